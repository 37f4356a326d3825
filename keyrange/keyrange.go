// Package keyrange encodes key addressing for range-oriented KV stores.
// A KeyRange covers a single key, every key under a prefix, or an
// arbitrary half-open interval, using the (key, range_end) convention.
package keyrange

// noRangeEnd is the range_end sentinel that means "no upper bound".
// The store treats the single zero byte as matching every key at or
// above the lower bound.
var noRangeEnd = []byte{0x00}

// KeyRange is an immutable half-open key interval [key, range_end).
// An empty range_end addresses exactly one key.
type KeyRange struct {
	key      []byte
	rangeEnd []byte
}

// Single returns a KeyRange that matches exactly key.
// The key must not be empty.
func Single(key []byte) (KeyRange, error) {
	if len(key) == 0 {
		return KeyRange{}, ErrEmptyKey
	}

	return KeyRange{key: key, rangeEnd: nil}, nil
}

// Prefix returns a KeyRange that matches every key starting with prefix.
// The prefix must not be empty.
func Prefix(prefix []byte) (KeyRange, error) {
	if len(prefix) == 0 {
		return KeyRange{}, ErrEmptyKey
	}

	return KeyRange{key: prefix, rangeEnd: PrefixRangeEnd(prefix)}, nil
}

// All returns a KeyRange that matches every key in the store.
// It is the only range with an empty lower bound.
func All() KeyRange {
	return KeyRange{key: nil, rangeEnd: noRangeEnd}
}

// From returns a KeyRange that matches every key at or above key.
// The key must not be empty.
func From(key []byte) (KeyRange, error) {
	if len(key) == 0 {
		return KeyRange{}, ErrEmptyKey
	}

	return KeyRange{key: key, rangeEnd: noRangeEnd}, nil
}

// New returns a KeyRange covering [key, rangeEnd) with a caller-supplied
// exclusive upper bound. The key must not be empty; rangeEnd is taken
// as-is, so the zero-byte sentinel and prefix bounds are both accepted.
func New(key, rangeEnd []byte) (KeyRange, error) {
	if len(key) == 0 {
		return KeyRange{}, ErrEmptyKey
	}

	return KeyRange{key: key, rangeEnd: rangeEnd}, nil
}

// Key returns the inclusive lower bound.
func (r KeyRange) Key() []byte {
	return r.key
}

// RangeEnd returns the exclusive upper bound. It is empty for a
// single-key range and the zero-byte sentinel for an unbounded one.
func (r KeyRange) RangeEnd() []byte {
	return r.rangeEnd
}

// IsSingleKey reports whether the range addresses exactly one key,
// which is the case iff range_end is empty.
func (r KeyRange) IsSingleKey() bool {
	return len(r.rangeEnd) == 0
}

// PrefixRangeEnd computes the exclusive upper bound of a prefix scan:
// the prefix with its last non-0xFF byte incremented and any trailing
// 0xFF bytes dropped. A prefix of all 0xFF bytes (or an empty prefix)
// has no finite successor, so the unbounded sentinel is returned.
func PrefixRangeEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)

	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}

	return noRangeEnd
}
