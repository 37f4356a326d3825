package rangeop

import (
	"github.com/tarantool/go-option"
	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrpc/keyrange"
	"github.com/tarantool/go-kvrpc/kv"
)

// Response is the decoded result of a range read.
type Response struct {
	header option.Generic[kv.ResponseHeader]
	kvs    []kv.KeyValue
	more   bool
	count  int64

	// lastKey survives TakeKVs so that NextRange stays usable after the
	// entries have been moved out.
	lastKey []byte
}

// NewResponse decodes a wire range response. A nil message or absent
// header decodes without error: missing optional fields resolve to safe
// defaults, the header stays observably absent.
func NewResponse(pb *etcdserverpb.RangeResponse) *Response {
	resp := &Response{
		header:  option.None[kv.ResponseHeader](),
		kvs:     []kv.KeyValue{},
		more:    false,
		count:   0,
		lastKey: nil,
	}

	if pb == nil {
		return resp
	}

	if header, ok := kv.HeaderFromPB(pb.Header); ok {
		resp.header = option.Some(header)
	}

	resp.kvs = kv.FromPBs(pb.Kvs)
	resp.more = pb.More
	resp.count = pb.Count

	if len(resp.kvs) > 0 {
		resp.lastKey = resp.kvs[len(resp.kvs)-1].Key
	}

	return resp
}

// TakeHeader moves the header out of the response, leaving it absent.
func (r *Response) TakeHeader() option.Generic[kv.ResponseHeader] {
	header := r.header
	r.header = option.None[kv.ResponseHeader]()

	return header
}

// Revision returns the store revision from the response header.
// It fails with kv.ErrMissingHeader when no header was present or the
// header has already been taken.
func (r *Response) Revision() (int64, error) {
	if !r.header.IsSome() {
		return 0, kv.ErrMissingHeader
	}

	return r.header.UnwrapOr(kv.ResponseHeader{}).Revision, nil
}

// TakeKVs moves the key-value pairs out of the response, leaving an
// empty slice in their place.
func (r *Response) TakeKVs() []kv.KeyValue {
	kvs := r.kvs
	r.kvs = []kv.KeyValue{}

	return kvs
}

// KVs returns a copy of the key-value pairs.
func (r *Response) KVs() []kv.KeyValue {
	out := make([]kv.KeyValue, len(r.kvs))
	copy(out, r.kvs)

	return out
}

// More reports whether the range holds entries beyond the requested
// limit. It is meaningful only when the request carried a nonzero
// limit: without one the store returns everything in a single response
// and leaves the flag unset.
func (r *Response) More() bool {
	return r.more
}

// Count returns the number of keys matching the range ignoring the
// limit. It is populated when counting was requested and is
// informational otherwise.
func (r *Response) Count() int64 {
	return r.count
}

// NextRange returns the key range for the next page of a limited read,
// continuing the given request range after the last returned key.
// Continuation is client-driven: the store does not paginate on its
// own. It returns false when the response is already complete or holds
// no entries to continue from.
func (r *Response) NextRange(prev keyrange.KeyRange) (keyrange.KeyRange, bool) {
	if !r.more || len(r.lastKey) == 0 || prev.IsSingleKey() {
		return keyrange.KeyRange{}, false
	}

	// The smallest key strictly greater than lastKey is lastKey + \x00.
	next := make([]byte, 0, len(r.lastKey)+1)
	next = append(next, r.lastKey...)
	next = append(next, 0x00)

	keyRange, err := keyrange.New(next, prev.RangeEnd())
	if err != nil {
		return keyrange.KeyRange{}, false
	}

	return keyRange, true
}
