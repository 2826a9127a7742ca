package cli

import "errors"

var (
	ErrNoInput        = errors.New("missing input image")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrSerialWithFile = errors.New("an output file cannot be combined with --serial")
)

// CheckArgs validates the positional arguments: an input and an optional output.
func CheckArgs(args []string, serial bool) error {
	switch {
	case len(args) < 1:
		return ErrNoInput
	case len(args) > 2:
		return ErrTooManyArgs
	case serial && len(args) == 2:
		return ErrSerialWithFile
	}
	return nil
}
