// Package driver defines the interface for KV transport implementations.
// It provides a common interface for different backends like etcd over
// gRPC and Tarantool.
package driver

import (
	"context"
	"errors"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
)

// ErrRevisionCompacted is returned when a historical read requests a
// revision the store no longer retains. Drivers surface it as-is and
// never fall back to reading the latest state.
var ErrRevisionCompacted = errors.New("requested revision has been compacted")

// Driver is the interface that KV transports must implement.
// A driver carries already-built wire messages to the store and returns
// the wire responses; request validation and response interpretation
// happen in the layers above. Cancellation and timeouts are controlled
// through the context.
type Driver interface {
	// Range executes a range read.
	Range(ctx context.Context, req *etcdserverpb.RangeRequest) (*etcdserverpb.RangeResponse, error)

	// DeleteRange executes a range deletion.
	DeleteRange(ctx context.Context, req *etcdserverpb.DeleteRangeRequest) (*etcdserverpb.DeleteRangeResponse, error)
}
