package deleteop

import (
	"github.com/tarantool/go-option"
	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrpc/kv"
)

// Response is the decoded result of a range deletion.
type Response struct {
	header  option.Generic[kv.ResponseHeader]
	deleted int64
	prevKVs []kv.KeyValue
}

// NewResponse decodes a wire delete response. The prevKVRequested flag
// must reflect the originating request: when previous values were not
// requested, any capture data the wire unexpectedly carries is
// discarded rather than surfaced. Deleting zero keys is not an error.
func NewResponse(pb *etcdserverpb.DeleteRangeResponse, prevKVRequested bool) *Response {
	resp := &Response{
		header:  option.None[kv.ResponseHeader](),
		deleted: 0,
		prevKVs: []kv.KeyValue{},
	}

	if pb == nil {
		return resp
	}

	if header, ok := kv.HeaderFromPB(pb.Header); ok {
		resp.header = option.Some(header)
	}

	resp.deleted = pb.Deleted

	if prevKVRequested {
		resp.prevKVs = kv.FromPBs(pb.PrevKvs)
	}

	return resp
}

// TakeHeader moves the header out of the response, leaving it absent.
func (r *Response) TakeHeader() option.Generic[kv.ResponseHeader] {
	header := r.header
	r.header = option.None[kv.ResponseHeader]()

	return header
}

// Revision returns the post-delete store revision from the response
// header. It fails with kv.ErrMissingHeader when no header was present
// or the header has already been taken; the zero revision is never
// silently substituted.
func (r *Response) Revision() (int64, error) {
	if !r.header.IsSome() {
		return 0, kv.ErrMissingHeader
	}

	return r.header.UnwrapOr(kv.ResponseHeader{}).Revision, nil
}

// Deleted returns the number of keys removed by the request.
func (r *Response) Deleted() int64 {
	return r.deleted
}

// TakePrevKVs moves the captured previous key-value pairs out of the
// response, leaving an empty slice in their place. It is always empty
// when capture was not requested.
func (r *Response) TakePrevKVs() []kv.KeyValue {
	prevKVs := r.prevKVs
	r.prevKVs = []kv.KeyValue{}

	return prevKVs
}

// PrevKVs returns a copy of the captured previous key-value pairs.
func (r *Response) PrevKVs() []kv.KeyValue {
	out := make([]kv.KeyValue, len(r.prevKVs))
	copy(out, r.prevKVs)

	return out
}

// HasPrevKVs reports whether any previous key-value pairs were captured.
func (r *Response) HasPrevKVs() bool {
	return len(r.prevKVs) > 0
}
