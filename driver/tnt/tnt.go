// Package tnt provides a Tarantool implementation of the KV transport
// interface. Requests are carried as stored-function calls with
// msgpack-encoded arguments.
package tnt

import (
	"context"
	"fmt"
	"strings"

	"github.com/tarantool/go-tarantool/v2"
	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.uber.org/zap"

	"github.com/tarantool/go-kvrpc/driver"
	"github.com/tarantool/go-kvrpc/internal/options"
)

const (
	rangeFunction       = "kvrpc.range"
	deleteRangeFunction = "kvrpc.delete_range"

	// compactedErrorText is the marker the stored functions put into the
	// error message when a requested revision has been compacted away.
	compactedErrorText = "revision has been compacted"
)

// Driver is a Tarantool implementation of the KV transport interface.
type Driver struct {
	conn   tarantool.Doer // Tarantool connection or connection pool.
	logger *zap.Logger    // nop unless configured.
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// driverOptions contains configuration options for the driver.
type driverOptions struct {
	Logger *zap.Logger // Logger for call debug logging.
}

// defaultOptions returns driver options with a nop logger.
func defaultOptions() driverOptions {
	return driverOptions{
		Logger: zap.NewNop(),
	}
}

// WithLogger configures the driver to log executed calls at debug level.
func WithLogger(logger *zap.Logger) options.OptionCallback[driverOptions] {
	return func(opts *driverOptions) {
		opts.Logger = logger
	}
}

// New creates a new Tarantool driver instance over an established
// connection. tarantool.Connection and pool.ConnectionAdapter both
// satisfy the Doer interface.
func New(doer tarantool.Doer, opts ...options.OptionCallback[driverOptions]) *Driver {
	driverOpts := options.ApplyOptions(defaultOptions, opts)

	return &Driver{
		conn:   doer,
		logger: driverOpts.Logger,
	}
}

// Range executes a range read through the kvrpc.range stored function.
func (d Driver) Range(
	ctx context.Context,
	req *etcdserverpb.RangeRequest,
) (*etcdserverpb.RangeResponse, error) {
	callReq := tarantool.NewCallRequest(rangeFunction).
		Args([]any{newRangeCall(req)}).Context(ctx)

	var result []rangeReply

	switch err := d.conn.Do(callReq).GetTyped(&result); {
	case err != nil:
		return nil, translateError("range", err)
	case len(result) != 1:
		return nil, fmt.Errorf("%w: expected 1 range reply, got %d", ErrUnexpectedResponse, len(result))
	}

	resp, err := result[0].asPB()
	if err != nil {
		return nil, err
	}

	d.logger.Debug("range executed",
		zap.Int("kvs", len(resp.Kvs)),
		zap.Bool("more", resp.More),
		zap.Int64("count", resp.Count),
	)

	return resp, nil
}

// DeleteRange executes a range deletion through the kvrpc.delete_range
// stored function.
func (d Driver) DeleteRange(
	ctx context.Context,
	req *etcdserverpb.DeleteRangeRequest,
) (*etcdserverpb.DeleteRangeResponse, error) {
	callReq := tarantool.NewCallRequest(deleteRangeFunction).
		Args([]any{newDeleteCall(req)}).Context(ctx)

	var result []deleteReply

	switch err := d.conn.Do(callReq).GetTyped(&result); {
	case err != nil:
		return nil, translateError("delete range", err)
	case len(result) != 1:
		return nil, fmt.Errorf("%w: expected 1 delete reply, got %d", ErrUnexpectedResponse, len(result))
	}

	resp, err := result[0].asPB()
	if err != nil {
		return nil, err
	}

	d.logger.Debug("delete range executed",
		zap.Int64("deleted", resp.Deleted),
		zap.Int("prev_kvs", len(resp.PrevKvs)),
	)

	return resp, nil
}

// translateError maps stored-function failures the client layer is
// responsible for onto driver errors. Compaction is recognized by the
// marker text the stored functions raise with; everything else passes
// through wrapped and uninterpreted.
func translateError(op string, err error) error {
	if strings.Contains(err.Error(), compactedErrorText) {
		return fmt.Errorf("%w: %v", driver.ErrRevisionCompacted, err)
	}

	return fmt.Errorf("%s failed: %w", op, err)
}
