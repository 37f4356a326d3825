package keyrange

import (
	"errors"
)

// Error definitions for err113 compliance.
var (
	// ErrEmptyKey is returned when a constructor other than All receives
	// an empty key or prefix.
	ErrEmptyKey = errors.New("key must not be empty")
)
