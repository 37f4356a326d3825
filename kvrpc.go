package kvrpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarantool/go-kvrpc/deleteop"
	"github.com/tarantool/go-kvrpc/driver"
	"github.com/tarantool/go-kvrpc/kv"
	"github.com/tarantool/go-kvrpc/rangeop"
)

// defaultPageLimit is the page size RangeAll uses when the request
// itself carries no limit.
const defaultPageLimit = 1000

// ErrUnpageableSort is returned by RangeAll when the request orders
// results by anything other than ascending key. Client-driven
// continuation advances through key space, so any other order would
// splice pages incorrectly.
var ErrUnpageableSort = errors.New("paginated range requires key-ascending order")

// KV is the main interface for executing range reads and deletions
// against the store. Each call is independent: requests and responses
// share no state with the connection, and cancellation is controlled
// through the context.
type KV interface {
	// Range executes a range read and decodes the response.
	Range(ctx context.Context, req *rangeop.Request) (*rangeop.Response, error)

	// Delete executes a range deletion and decodes the response.
	Delete(ctx context.Context, req *deleteop.Request) (*deleteop.Response, error)

	// RangeAll enumerates every entry the request matches, repeating
	// limited reads and continuing after the last returned key until the
	// store reports no further results.
	RangeAll(ctx context.Context, req *rangeop.Request) ([]kv.KeyValue, error)
}

// clientOptions contains configuration options for client instances.
type clientOptions struct {
	PageLimit int64 // Page size for RangeAll when the request has no limit.
}

// Option is a function that configures client options.
type Option func(*clientOptions)

// WithPageLimit configures the page size RangeAll uses for requests
// that carry no limit of their own.
func WithPageLimit(limit int64) Option {
	return func(opts *clientOptions) {
		opts.PageLimit = limit
	}
}

// client is the concrete implementation of the KV interface.
type client struct {
	driver    driver.Driver // Underlying transport.
	pageLimit int64
}

// New creates a new KV client over the specified driver.
func New(driver driver.Driver, opts ...Option) KV {
	clientOpts := clientOptions{
		PageLimit: defaultPageLimit,
	}
	for _, opt := range opts {
		opt(&clientOpts)
	}

	return &client{
		driver:    driver,
		pageLimit: clientOpts.PageLimit,
	}
}

// Range implements the KV interface for range reads.
func (c client) Range(ctx context.Context, req *rangeop.Request) (*rangeop.Response, error) {
	resp, err := c.driver.Range(ctx, req.ToPB())
	if err != nil {
		return nil, fmt.Errorf("range execute failed: %w", err)
	}

	return rangeop.NewResponse(resp), nil
}

// Delete implements the KV interface for range deletions.
func (c client) Delete(ctx context.Context, req *deleteop.Request) (*deleteop.Response, error) {
	resp, err := c.driver.DeleteRange(ctx, req.ToPB())
	if err != nil {
		return nil, fmt.Errorf("delete execute failed: %w", err)
	}

	return deleteop.NewResponse(resp, req.PrevKV()), nil
}

// RangeAll implements the KV interface for full enumeration.
// The store does not paginate on its own, so enumeration beyond one
// page repeats the request with the lower bound moved past the last
// returned key.
func (c client) RangeAll(ctx context.Context, req *rangeop.Request) ([]kv.KeyValue, error) {
	if !pageable(req) {
		return nil, ErrUnpageableSort
	}

	pageReq := req
	if req.Limit() == 0 {
		pageReq = req.ForRange(req.KeyRange())
		if err := pageReq.SetLimit(c.pageLimit); err != nil {
			return nil, fmt.Errorf("set page limit: %w", err)
		}
	}

	var out []kv.KeyValue

	for {
		resp, err := c.Range(ctx, pageReq)
		if err != nil {
			return nil, err
		}

		out = append(out, resp.TakeKVs()...)

		next, ok := resp.NextRange(pageReq.KeyRange())
		if !ok {
			return out, nil
		}

		pageReq = pageReq.ForRange(next)
	}
}

// pageable reports whether continuation by key successor preserves the
// requested order.
func pageable(req *rangeop.Request) bool {
	order, target := req.Sort()

	return order == rangeop.SortNone ||
		(order == rangeop.SortAscend && target == rangeop.SortByKey)
}
