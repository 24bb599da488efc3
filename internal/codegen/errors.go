package codegen

import "errors"

// ErrUnsupportedKind is returned when no generator serves a kind or extension
var ErrUnsupportedKind = errors.New("unsupported kind")
