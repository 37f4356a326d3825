package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-kvrpc/internal/options"
)

func zero[T any]() (out T) { return } //nolint:nonamedreturns

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	type config struct {
		value int
		name  string
		flag  bool
	}

	tests := []struct {
		name        string
		constructor options.OptionConstructor[config]
		callbacks   []options.OptionCallback[config]
		expected    config
	}{
		{
			name:        "nil constructor and no callbacks",
			constructor: nil,
			callbacks:   nil,
			expected:    zero[config](),
		},
		{
			name: "constructor returns default, no callbacks",
			constructor: func() config {
				return config{value: 42, name: "default", flag: false}
			},
			callbacks: nil,
			expected:  config{value: 42, name: "default", flag: false},
		},
		{
			name:        "nil constructor, single callback",
			constructor: nil,
			callbacks: []options.OptionCallback[config]{
				func(c *config) { c.value = 100 },
			},
			expected: config{value: 100, name: "", flag: false},
		},
		{
			name: "constructor with one callback",
			constructor: func() config {
				return config{value: 1, name: "initial", flag: false}
			},
			callbacks: []options.OptionCallback[config]{
				func(c *config) { c.value = 999 },
			},
			expected: config{value: 999, name: "initial", flag: false},
		},
		{
			name: "multiple callbacks applied in order",
			constructor: func() config {
				return zero[config]()
			},
			callbacks: []options.OptionCallback[config]{
				func(c *config) { c.value += 5 },
				func(c *config) { c.name = "after" },
				func(c *config) { c.flag = true },
			},
			expected: config{value: 5, name: "after", flag: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := options.ApplyOptions(tt.constructor, tt.callbacks)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplyOptions_ChainCallbacks(t *testing.T) {
	t.Parallel()

	type counter struct{ val int }

	constructor := func() counter { return counter{val: 0} }
	callbacks := []options.OptionCallback[counter]{
		func(c *counter) { c.val++ },
		func(c *counter) { c.val *= 5 },
		func(c *counter) { c.val += 2 },
	}

	result := options.ApplyOptions(constructor, callbacks)
	assert.Equal(t, 7, result.val) // (0+1)*5+2 = 7
}
