// Package mocks provides mock implementations of the transport
// interfaces. It is used for testing purposes.
package mocks

import (
	"context"

	"github.com/gojuno/minimock/v3"
	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"google.golang.org/grpc"
)

// KVClientMock is a configurable mock of the etcd KV service client.
// Calls without a configured handler fail the test.
type KVClientMock struct {
	t minimock.Tester

	RangeFunc func(
		ctx context.Context,
		in *etcdserverpb.RangeRequest,
		opts ...grpc.CallOption,
	) (*etcdserverpb.RangeResponse, error)

	DeleteRangeFunc func(
		ctx context.Context,
		in *etcdserverpb.DeleteRangeRequest,
		opts ...grpc.CallOption,
	) (*etcdserverpb.DeleteRangeResponse, error)
}

// NewKVClientMock creates a new KVClientMock.
func NewKVClientMock(t minimock.Tester) *KVClientMock {
	return &KVClientMock{
		t:               t,
		RangeFunc:       nil,
		DeleteRangeFunc: nil,
	}
}

// Range calls the configured Range handler.
func (m *KVClientMock) Range(
	ctx context.Context,
	in *etcdserverpb.RangeRequest,
	opts ...grpc.CallOption,
) (*etcdserverpb.RangeResponse, error) {
	if m.RangeFunc == nil {
		m.t.Fatalf("unexpected call to KVClientMock.Range")

		return nil, nil //nolint:nilnil // unreachable, Fatalf stops the test
	}

	return m.RangeFunc(ctx, in, opts...)
}

// DeleteRange calls the configured DeleteRange handler.
func (m *KVClientMock) DeleteRange(
	ctx context.Context,
	in *etcdserverpb.DeleteRangeRequest,
	opts ...grpc.CallOption,
) (*etcdserverpb.DeleteRangeResponse, error) {
	if m.DeleteRangeFunc == nil {
		m.t.Fatalf("unexpected call to KVClientMock.DeleteRange")

		return nil, nil //nolint:nilnil // unreachable, Fatalf stops the test
	}

	return m.DeleteRangeFunc(ctx, in, opts...)
}
