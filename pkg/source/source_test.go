package source

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 8, 4), 0644))

	img, err := NewLoader(zap.NewNop()).Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	_, err = NewLoader(zap.NewNop()).Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	body := pngBytes(t, 6, 6)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	l := NewLoader(zap.NewNop(), WithFill(3, 2))

	img, err := l.Open(srv.URL + "/ok.png")
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	_, err = l.Fetch(srv.URL + "/missing.png")
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestResizeKeepsRatio(t *testing.T) {
	l := NewLoader(zap.NewNop(), WithResize(4, 0))

	img, err := l.Decode(bytes.NewReader(pngBytes(t, 8, 4)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := NewLoader(zap.NewNop()).Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("320x480")
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 480, h)

	for _, in := range []string{"", "320", "ax1", "-1x2"} {
		_, _, err := ParseSize(in)
		assert.Error(t, err, in)
	}
}
