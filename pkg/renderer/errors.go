package renderer

import "errors"

// ErrInvalidCamera is wrapped by every camera configuration error
var ErrInvalidCamera = errors.New("renderer: invalid camera configuration")
