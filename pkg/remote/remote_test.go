package remote

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net"
	"net/rpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tgadump/pkg/bitmap"
	"tgadump/pkg/source"
	"tgadump/pkg/tga"
)

func newPair(t *testing.T) *Client {
	t.Helper()

	srv := rpc.NewServer()
	require.NoError(t, Register(srv, NewService(source.NewLoader(zap.NewNop()), zap.NewNop())))

	serverConn, clientConn := net.Pipe()
	go srv.ServeConn(serverConn)

	c := NewClient(clientConn)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestEncode(t *testing.T) {
	c := newPair(t)
	pixels := []color.NRGBA{{R: 30, G: 20, B: 10, A: 40}, {R: 1, G: 2, B: 3, A: 4}}

	got, err := c.Encode(2, 1, pixels)
	require.NoError(t, err)

	want, err := tga.Marshal(2, 1, pixels)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeErrors(t *testing.T) {
	c := newPair(t)

	_, err := c.Encode(2, 2, make([]color.NRGBA, 3))
	assert.ErrorIs(t, err, tga.ErrPixelCountMismatch)

	_, err = c.Encode(tga.MaxDimension+1, 0, nil)
	assert.ErrorIs(t, err, tga.ErrDimensionTooLarge)
	assert.Contains(t, err.Error(), "width 65536")
}

func TestEncodeImage(t *testing.T) {
	c := newPair(t)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	got, err := c.EncodeImage(buf.Bytes())
	require.NoError(t, err)
	require.EqualValues(t, tga.Size(3, 2), len(got))

	want, err := tga.Marshal(3, 2, bitmap.Pixels(img))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = c.EncodeImage([]byte("garbage"))
	assert.Error(t, err)
}
