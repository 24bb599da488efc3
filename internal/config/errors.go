package config

import "errors"

var (
	// ErrNotFound is returned when no settings file exists along the search path
	ErrNotFound = errors.New("no settings file found")

	// ErrUnsupportedFormat is returned for settings paths with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported settings format")
)
