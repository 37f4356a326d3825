// Package intconv provides checked conversions between wire and host
// integer widths. Conversions fail on overflow, they never truncate.
package intconv

import (
	"errors"
	"math"
)

// ErrIntegerOverflow is returned when a value does not fit the target
// integer width.
var ErrIntegerOverflow = errors.New("integer overflow")

// ToInt64 converts an unsigned wire integer to int64.
func ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, ErrIntegerOverflow
	}

	return int64(v), nil
}
