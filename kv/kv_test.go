package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"

	"github.com/tarantool/go-kvrpc/kv"
)

func TestFromPB(t *testing.T) {
	t.Parallel()

	pb := &mvccpb.KeyValue{
		Key:            []byte("foo"),
		Value:          []byte("bar"),
		CreateRevision: 5,
		ModRevision:    7,
		Version:        3,
		Lease:          11,
	}

	decoded := kv.FromPB(pb)

	assert.Equal(t, []byte("foo"), decoded.Key)
	assert.Equal(t, []byte("bar"), decoded.Value)
	assert.Equal(t, int64(5), decoded.CreateRevision)
	assert.Equal(t, int64(7), decoded.ModRevision)
	assert.Equal(t, int64(3), decoded.Version)
	assert.Equal(t, int64(11), decoded.Lease)
}

func TestFromPB_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kv.KeyValue{}, kv.FromPB(nil))
}

func TestFromPBs(t *testing.T) {
	t.Parallel()

	pbs := []*mvccpb.KeyValue{
		{Key: []byte("a"), Value: []byte("1")},
		nil,
		{Key: []byte("b"), Value: []byte("2")},
	}

	decoded := kv.FromPBs(pbs)

	require.Len(t, decoded, 2)
	assert.Equal(t, []byte("a"), decoded[0].Key)
	assert.Equal(t, []byte("b"), decoded[1].Key)
}

func TestFromPBs_Empty(t *testing.T) {
	t.Parallel()

	decoded := kv.FromPBs(nil)

	require.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestHeaderFromPB(t *testing.T) {
	t.Parallel()

	header, ok := kv.HeaderFromPB(&etcdserverpb.ResponseHeader{
		ClusterId: 1,
		MemberId:  2,
		Revision:  3,
		RaftTerm:  4,
	})

	require.True(t, ok)
	assert.Equal(t, uint64(1), header.ClusterID)
	assert.Equal(t, uint64(2), header.MemberID)
	assert.Equal(t, int64(3), header.Revision)
	assert.Equal(t, uint64(4), header.RaftTerm)
}

func TestHeaderFromPB_Nil(t *testing.T) {
	t.Parallel()

	header, ok := kv.HeaderFromPB(nil)

	assert.False(t, ok)
	assert.Equal(t, kv.ResponseHeader{}, header)
}
