// Package etcdgrpc provides an etcd implementation of the KV transport
// interface. It carries wire messages over the KV gRPC service of an
// etcd cluster.
package etcdgrpc

import (
	"context"
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tarantool/go-kvrpc/driver"
	"github.com/tarantool/go-kvrpc/internal/options"
)

// KVClient defines the minimal interface needed for etcd KV calls.
// etcdserverpb.KVClient implements it; mocks implement it in tests.
type KVClient interface {
	// Range executes a range read RPC.
	Range(
		ctx context.Context,
		in *etcdserverpb.RangeRequest,
		opts ...grpc.CallOption,
	) (*etcdserverpb.RangeResponse, error)
	// DeleteRange executes a range deletion RPC.
	DeleteRange(
		ctx context.Context,
		in *etcdserverpb.DeleteRangeRequest,
		opts ...grpc.CallOption,
	) (*etcdserverpb.DeleteRangeResponse, error)
}

// Driver is an etcd implementation of the KV transport interface.
type Driver struct {
	client KVClient    // etcd KV service client.
	logger *zap.Logger // nop unless configured.
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// driverOptions contains configuration options for the driver.
type driverOptions struct {
	Logger *zap.Logger // Logger for RPC debug logging.
}

// defaultOptions returns driver options with a nop logger.
func defaultOptions() driverOptions {
	return driverOptions{
		Logger: zap.NewNop(),
	}
}

// WithLogger configures the driver to log executed RPCs at debug level.
func WithLogger(logger *zap.Logger) options.OptionCallback[driverOptions] {
	return func(opts *driverOptions) {
		opts.Logger = logger
	}
}

// New creates a new etcd driver instance using an existing etcd client.
// The client should be properly configured and connected to an etcd
// cluster; the driver reuses its active gRPC connection.
func New(client *etcd.Client, opts ...options.OptionCallback[driverOptions]) *Driver {
	return NewFromKVClient(etcdserverpb.NewKVClient(client.ActiveConnection()), opts...)
}

// NewFromKVClient creates a new etcd driver instance over an existing
// KV service client.
func NewFromKVClient(client KVClient, opts ...options.OptionCallback[driverOptions]) *Driver {
	driverOpts := options.ApplyOptions(defaultOptions, opts)

	return &Driver{
		client: client,
		logger: driverOpts.Logger,
	}
}

// Range executes a range read over the KV service.
func (d Driver) Range(
	ctx context.Context,
	req *etcdserverpb.RangeRequest,
) (*etcdserverpb.RangeResponse, error) {
	resp, err := d.client.Range(ctx, req)
	if err != nil {
		return nil, translateError("range", err)
	}

	d.logger.Debug("range executed",
		zap.Int("kvs", len(resp.Kvs)),
		zap.Bool("more", resp.More),
		zap.Int64("count", resp.Count),
	)

	return resp, nil
}

// DeleteRange executes a range deletion over the KV service.
func (d Driver) DeleteRange(
	ctx context.Context,
	req *etcdserverpb.DeleteRangeRequest,
) (*etcdserverpb.DeleteRangeResponse, error) {
	resp, err := d.client.DeleteRange(ctx, req)
	if err != nil {
		return nil, translateError("delete range", err)
	}

	d.logger.Debug("delete range executed",
		zap.Int64("deleted", resp.Deleted),
		zap.Int("prev_kvs", len(resp.PrevKvs)),
	)

	return resp, nil
}

// translateError maps store-side failures the client layer is
// responsible for onto driver errors. The compaction failure arrives as
// an OutOfRange status from etcd; everything else passes through
// wrapped and uninterpreted.
func translateError(op string, err error) error {
	if status.Code(err) == codes.OutOfRange {
		return fmt.Errorf("%w: %v", driver.ErrRevisionCompacted, err)
	}

	return fmt.Errorf("%s failed: %w", op, err)
}
