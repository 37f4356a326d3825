package rangeop

import (
	"errors"
)

// Error definitions for err113 compliance.
var (
	// ErrNegativeLimit is returned when a negative limit is requested.
	ErrNegativeLimit = errors.New("limit must not be negative")
	// ErrNegativeRevision is returned when a negative revision is requested.
	ErrNegativeRevision = errors.New("revision must not be negative")
	// ErrUnknownSortOrder is returned when the sort order is out of range.
	ErrUnknownSortOrder = errors.New("unknown sort order")
	// ErrUnknownSortTarget is returned when the sort target is out of range.
	ErrUnknownSortTarget = errors.New("unknown sort target")
	// ErrKeysAndCountOnly is returned when keys-only and count-only are
	// requested together. Count-only already suppresses key payloads.
	ErrKeysAndCountOnly = errors.New("keys-only and count-only are mutually exclusive")
)
