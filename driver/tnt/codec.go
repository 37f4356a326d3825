package tnt

import (
	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"

	"github.com/tarantool/go-kvrpc/internal/intconv"
)

// rangeCall is the argument of the kvrpc.range stored function.
type rangeCall struct {
	_msgpack struct{} `msgpack:",omitempty"` //nolint:unused

	Key               []byte `msgpack:"key"`
	RangeEnd          []byte `msgpack:"range_end"`
	Limit             int64  `msgpack:"limit"`
	Revision          int64  `msgpack:"revision"`
	SortOrder         int32  `msgpack:"sort_order"`
	SortTarget        int32  `msgpack:"sort_target"`
	Serializable      bool   `msgpack:"serializable"`
	KeysOnly          bool   `msgpack:"keys_only"`
	CountOnly         bool   `msgpack:"count_only"`
	MinModRevision    int64  `msgpack:"min_mod_revision"`
	MaxModRevision    int64  `msgpack:"max_mod_revision"`
	MinCreateRevision int64  `msgpack:"min_create_revision"`
	MaxCreateRevision int64  `msgpack:"max_create_revision"`
}

// newRangeCall builds the stored-function argument from a wire request.
func newRangeCall(req *etcdserverpb.RangeRequest) rangeCall {
	return rangeCall{
		_msgpack:          struct{}{},
		Key:               req.Key,
		RangeEnd:          req.RangeEnd,
		Limit:             req.Limit,
		Revision:          req.Revision,
		SortOrder:         int32(req.SortOrder),
		SortTarget:        int32(req.SortTarget),
		Serializable:      req.Serializable,
		KeysOnly:          req.KeysOnly,
		CountOnly:         req.CountOnly,
		MinModRevision:    req.MinModRevision,
		MaxModRevision:    req.MaxModRevision,
		MinCreateRevision: req.MinCreateRevision,
		MaxCreateRevision: req.MaxCreateRevision,
	}
}

// deleteCall is the argument of the kvrpc.delete_range stored function.
type deleteCall struct {
	_msgpack struct{} `msgpack:",omitempty"` //nolint:unused

	Key      []byte `msgpack:"key"`
	RangeEnd []byte `msgpack:"range_end"`
	PrevKV   bool   `msgpack:"prev_kv"`
}

// newDeleteCall builds the stored-function argument from a wire request.
func newDeleteCall(req *etcdserverpb.DeleteRangeRequest) deleteCall {
	return deleteCall{
		_msgpack: struct{}{},
		Key:      req.Key,
		RangeEnd: req.RangeEnd,
		PrevKV:   req.PrevKv,
	}
}

// headerReply is the response header as returned by the stored
// functions. Lua numbers arrive unsigned, so revisions are narrowed
// with overflow checks when converting to the wire message.
type headerReply struct {
	ClusterID uint64 `msgpack:"cluster_id"`
	MemberID  uint64 `msgpack:"member_id"`
	Revision  uint64 `msgpack:"revision"`
	RaftTerm  uint64 `msgpack:"raft_term"`
}

func (h *headerReply) asPB() (*etcdserverpb.ResponseHeader, error) {
	if h == nil {
		return nil, nil //nolint:nilnil // absent header decodes to an absent header
	}

	revision, err := intconv.ToInt64(h.Revision)
	if err != nil {
		return nil, err
	}

	return &etcdserverpb.ResponseHeader{
		ClusterId: h.ClusterID,
		MemberId:  h.MemberID,
		Revision:  revision,
		RaftTerm:  h.RaftTerm,
	}, nil
}

// kvReply is one key-value entry as returned by the stored functions.
type kvReply struct {
	Key            []byte `msgpack:"key"`
	Value          []byte `msgpack:"value"`
	CreateRevision uint64 `msgpack:"create_revision"`
	ModRevision    uint64 `msgpack:"mod_revision"`
	Version        uint64 `msgpack:"version"`
	Lease          uint64 `msgpack:"lease"`
}

func (k kvReply) asPB() (*mvccpb.KeyValue, error) {
	createRevision, err := intconv.ToInt64(k.CreateRevision)
	if err != nil {
		return nil, err
	}

	modRevision, err := intconv.ToInt64(k.ModRevision)
	if err != nil {
		return nil, err
	}

	version, err := intconv.ToInt64(k.Version)
	if err != nil {
		return nil, err
	}

	lease, err := intconv.ToInt64(k.Lease)
	if err != nil {
		return nil, err
	}

	return &mvccpb.KeyValue{
		Key:            k.Key,
		Value:          k.Value,
		CreateRevision: createRevision,
		ModRevision:    modRevision,
		Version:        version,
		Lease:          lease,
	}, nil
}

// rangeReply is the result of the kvrpc.range stored function.
type rangeReply struct {
	Header *headerReply `msgpack:"header"`
	KVs    []kvReply    `msgpack:"kvs"`
	More   bool         `msgpack:"more"`
	Count  uint64       `msgpack:"count"`
}

func (r rangeReply) asPB() (*etcdserverpb.RangeResponse, error) {
	header, err := r.Header.asPB()
	if err != nil {
		return nil, NewRangeReplyDecodingError("decode header revision", err)
	}

	count, err := intconv.ToInt64(r.Count)
	if err != nil {
		return nil, NewRangeReplyDecodingError("decode count", err)
	}

	kvs := make([]*mvccpb.KeyValue, 0, len(r.KVs))

	for _, entry := range r.KVs {
		pb, err := entry.asPB()
		if err != nil {
			return nil, NewRangeReplyDecodingError("decode kv revisions", err)
		}

		kvs = append(kvs, pb)
	}

	return &etcdserverpb.RangeResponse{
		Header: header,
		Kvs:    kvs,
		More:   r.More,
		Count:  count,
	}, nil
}

// deleteReply is the result of the kvrpc.delete_range stored function.
type deleteReply struct {
	Header  *headerReply `msgpack:"header"`
	Deleted uint64       `msgpack:"deleted"`
	PrevKVs []kvReply    `msgpack:"prev_kvs"`
}

func (r deleteReply) asPB() (*etcdserverpb.DeleteRangeResponse, error) {
	header, err := r.Header.asPB()
	if err != nil {
		return nil, NewDeleteReplyDecodingError("decode header revision", err)
	}

	deleted, err := intconv.ToInt64(r.Deleted)
	if err != nil {
		return nil, NewDeleteReplyDecodingError("decode deleted count", err)
	}

	prevKVs := make([]*mvccpb.KeyValue, 0, len(r.PrevKVs))

	for _, entry := range r.PrevKVs {
		pb, err := entry.asPB()
		if err != nil {
			return nil, NewDeleteReplyDecodingError("decode prev kv revisions", err)
		}

		prevKVs = append(prevKVs, pb)
	}

	return &etcdserverpb.DeleteRangeResponse{
		Header:  header,
		Deleted: deleted,
		PrevKvs: prevKVs,
	}, nil
}
