// Package options implements the functional-options pattern shared by
// the transport drivers.
package options

// OptionConstructor produces the defaults a set of options starts from.
type OptionConstructor[T any] func() T

// OptionCallback mutates one option in place.
type OptionCallback[T any] func(*T)

// ApplyOptions builds an option set from its defaults and applies the
// callbacks in order.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
