package genconfig

import "errors"

// ErrInvalidConfig is returned for configurations that cannot be generated
var ErrInvalidConfig = errors.New("invalid config")
