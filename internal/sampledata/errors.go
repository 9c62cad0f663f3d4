package sampledata

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	ErrInvalidCount = errors.New("package count must be positive")
	ErrUnknownCode  = errors.New("unknown workout type code")
)
