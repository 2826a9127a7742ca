package source

import "fmt"

type fitMode int

const (
	fitNone fitMode = iota
	fitFill
	fitResize
)

type Option func(l *Loader)

// WithFill crops and scales every image to exactly width x height around its center.
func WithFill(width, height int) Option {
	return func(l *Loader) {
		l.fit = fitFill
		l.width = width
		l.height = height
	}
}

// WithResize scales every image; a zero width or height keeps the aspect ratio.
func WithResize(width, height int) Option {
	return func(l *Loader) {
		l.fit = fitResize
		l.width = width
		l.height = height
	}
}

func WithProgress() Option {
	return func(l *Loader) {
		l.progress = true
	}
}

// ParseSize reads a "WIDTHxHEIGHT" pair such as "320x480".
func ParseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return w, h, nil
}
