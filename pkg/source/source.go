package source

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var ErrBadStatus = errors.New("unexpected response status")

func NewLoader(logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

type Loader struct {
	cli      *resty.Client
	log      *zap.Logger
	fit      fitMode
	width    int
	height   int
	progress bool
}

// Open loads ref as a URL when it has an http(s) scheme, as a local path otherwise.
func (l *Loader) Open(ref string) (image.Image, error) {
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.Fetch(ref)
	}
	return l.Load(ref)
}

func (l *Loader) Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image failed: %w", err)
	}

	l.log.With(zap.String("path", path)).Debug("loaded")
	return l.fitted(img), nil
}

func (l *Loader) Fetch(link string) (image.Image, error) {
	resp, err := l.cli.R().Get(link)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, errors.Wrapf(ErrBadStatus, "GET %s: %d", link, resp.StatusCode())
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if l.progress {
		dst = io.MultiWriter(&buf, progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", link)))
	}

	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, err
	}

	l.log.With(zap.String("url", link), zap.Int("size", buf.Len())).Debug("fetched")
	return l.Decode(&buf)
}

func (l *Loader) Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return l.fitted(img), nil
}

func (l *Loader) fitted(img image.Image) image.Image {
	switch l.fit {
	case fitFill:
		return imaging.Fill(img, l.width, l.height, imaging.Center, imaging.Lanczos)
	case fitResize:
		return imaging.Resize(img, l.width, l.height, imaging.Lanczos)
	}
	return img
}
