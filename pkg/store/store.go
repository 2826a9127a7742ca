package store

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"path"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"tgadump/pkg/bitmap"
	"tgadump/pkg/tga"
)

const Ext = ".tga"

func New(fs afero.Fs, dir string, logger *zap.Logger) (*Store, error) {
	base, err := newFs(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("create store failed: %w", err)
	}

	return &Store{fs: base, log: logger.With(zap.String("dir", dir))}, nil
}

// Store writes TGA files into a directory. A file either appears complete
// under its final name or not at all.
type Store struct {
	fs  afero.Fs
	log *zap.Logger
}

func (s *Store) filename(name string) string {
	if strings.EqualFold(path.Ext(name), Ext) {
		return name
	}
	return name + Ext
}

func (s *Store) Exists(name string) (bool, error) {
	return afero.Exists(s.fs, s.filename(name))
}

// Save encodes pixels into name and returns the stored file name and its size.
func (s *Store) Save(name string, width, height int, pixels []color.NRGBA) (string, int64, error) {
	if err := tga.Validate(width, height, len(pixels)); err != nil {
		return "", 0, err
	}

	file := s.filename(name)
	if dir := path.Dir(file); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return "", 0, err
		}
	}

	n, err := s.atomicWrite(file, func(w io.Writer) (int64, error) {
		return tga.Encode(w, width, height, pixels)
	})
	if err != nil {
		return "", n, err
	}

	s.log.With(
		zap.String("file", file),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Debug("saved")

	return file, n, nil
}

func (s *Store) SaveImage(name string, img image.Image) (string, int64, error) {
	b := img.Bounds()
	return s.Save(name, b.Dx(), b.Dy(), bitmap.Pixels(img))
}

func (s *Store) atomicWrite(file string, encode func(w io.Writer) (int64, error)) (int64, error) {
	tmp := fmt.Sprintf("%s.%s.tmp", file, xid.New().String())

	f, err := s.fs.Create(tmp)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(f)
	n, err := encode(bw)
	if err == nil {
		if errF := bw.Flush(); errF != nil {
			err = &tga.WriteError{Written: n - int64(bw.Buffered()), Err: errF}
		}
	}
	if errC := f.Close(); err == nil {
		err = errC
	}
	if err == nil {
		err = s.fs.Rename(tmp, file)
	}

	if err != nil {
		if errR := s.fs.Remove(tmp); errR != nil {
			s.log.With(zap.String("tmp", tmp), zap.Error(errR)).Info("remove temp failed")
		}
		return n, fmt.Errorf("write %s failed: %w", file, err)
	}

	return n, nil
}
