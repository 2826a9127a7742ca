package store

import (
	"errors"

	"github.com/spf13/afero"
)

var ErrDirNotExists = errors.New("dir not exists")

func newFs(fs afero.Fs, path string) (afero.Fs, error) {
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrDirNotExists
	}
	return afero.NewBasePathFs(fs, path), nil
}
