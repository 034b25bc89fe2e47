package mmap

import "errors"

// ErrInvalidSize is returned when the requested size is zero or negative.
var ErrInvalidSize = errors.New("mmap: invalid size")
