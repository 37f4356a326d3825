package testing

import (
	"fmt"
	"os"
	"testing"
)

// T is the subset of the testing.T interface the mocks rely on.
type T interface {
	Helper()
	Log(args ...any)
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DummyT is a dummy implementation of the T interface to use in examples,
// where no real testing.T is available.
type DummyT struct {
	testing.T
}

// NewT returns a new dummy T instance.
func NewT() *DummyT {
	return &DummyT{T: testing.T{}}
}

var _ T = &DummyT{} //nolint:exhaustruct

// Helper is a dummy implementation of the testing.T method.
func (t *DummyT) Helper() {}

// Log is a dummy implementation of the testing.T method.
func (t *DummyT) Log(args ...any) {
	_, _ = fmt.Fprintln(os.Stderr, args...)
}

// Logf is a dummy implementation of the testing.T method.
func (t *DummyT) Logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}

// Fatalf is a dummy implementation of the testing.T method.
func (t *DummyT) Fatalf(format string, args ...any) {
	panic("fatal error: " + fmt.Sprintf(format, args...))
}

// Errorf is a dummy implementation of the testing.T method.
func (t *DummyT) Errorf(format string, args ...any) {
	panic("error: " + fmt.Sprintf(format, args...))
}
