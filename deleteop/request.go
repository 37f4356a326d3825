// Package deleteop builds range deletion requests and decodes their
// responses, including optional capture of the deleted values.
package deleteop

import (
	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrpc/keyrange"
)

// Request describes a deletion over a key range.
type Request struct {
	keyRange keyrange.KeyRange
	prevKV   bool
}

// NewRequest creates a delete request over the given key range.
// Previous values are not captured unless requested, so by default the
// response carries no extra payload.
func NewRequest(keyRange keyrange.KeyRange) *Request {
	return &Request{
		keyRange: keyRange,
		prevKV:   false,
	}
}

// SetPrevKV requests the key-value pairs as they existed immediately
// before this deletion.
func (r *Request) SetPrevKV(prevKV bool) {
	r.prevKV = prevKV
}

// PrevKV reports whether previous values were requested.
func (r *Request) PrevKV() bool {
	return r.prevKV
}

// KeyRange returns the key range this request deletes.
func (r *Request) KeyRange() keyrange.KeyRange {
	return r.keyRange
}

// IsSingleKey reports whether the request addresses exactly one key.
func (r *Request) IsSingleKey() bool {
	return r.keyRange.IsSingleKey()
}

// ToPB converts the request to its wire message.
func (r *Request) ToPB() *etcdserverpb.DeleteRangeRequest {
	return &etcdserverpb.DeleteRangeRequest{
		Key:      r.keyRange.Key(),
		RangeEnd: r.keyRange.RangeEnd(),
		PrevKv:   r.prevKV,
	}
}
