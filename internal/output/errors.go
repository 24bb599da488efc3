package output

import "errors"

// ErrExists is returned when a file exists and the policy forbids replacing it
var ErrExists = errors.New("file already exists")
