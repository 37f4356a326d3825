// Package rangeop builds range read requests and decodes their
// responses. A request is constructed from a keyrange.KeyRange, refined
// with limit, ordering, consistency and revision filters, and converted
// to the wire message right before transport.
package rangeop

import (
	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrpc/keyrange"
)

// Request describes a bounded or unbounded read over a key range.
// The zero filters mean: no limit, latest revision, store order,
// linearizable, full key-value payloads.
type Request struct {
	keyRange keyrange.KeyRange

	limit    int64
	revision int64

	sortOrder  SortOrder
	sortTarget SortTarget

	serializable bool
	keysOnly     bool
	countOnly    bool

	minModRevision    int64
	maxModRevision    int64
	minCreateRevision int64
	maxCreateRevision int64
}

// NewRequest creates a range request over the given key range with all
// filters at their defaults.
func NewRequest(keyRange keyrange.KeyRange) *Request {
	return &Request{
		keyRange:          keyRange,
		limit:             0,
		revision:          0,
		sortOrder:         SortNone,
		sortTarget:        SortByKey,
		serializable:      false,
		keysOnly:          false,
		countOnly:         false,
		minModRevision:    0,
		maxModRevision:    0,
		minCreateRevision: 0,
		maxCreateRevision: 0,
	}
}

// SetLimit sets the maximum number of keys returned.
// Zero means unbounded regardless of any previously set limit.
func (r *Request) SetLimit(limit int64) error {
	if limit < 0 {
		return ErrNegativeLimit
	}

	r.limit = limit

	return nil
}

// Limit returns the configured limit, 0 meaning unbounded.
func (r *Request) Limit() int64 {
	return r.limit
}

// SetRevision sets the store revision to read at. Zero reads the latest
// state. A positive revision requests a historical snapshot; the store
// rejects it at execution time if that revision has been compacted away.
func (r *Request) SetRevision(revision int64) error {
	if revision < 0 {
		return ErrNegativeRevision
	}

	r.revision = revision

	return nil
}

// Revision returns the configured read revision, 0 meaning latest.
func (r *Request) Revision() int64 {
	return r.revision
}

// SetSort sets the response ordering.
func (r *Request) SetSort(order SortOrder, target SortTarget) error {
	if order < SortNone || order > SortDescend {
		return ErrUnknownSortOrder
	}

	if target < SortByKey || target > SortByValue {
		return ErrUnknownSortTarget
	}

	r.sortOrder = order
	r.sortTarget = target

	return nil
}

// Sort returns the configured response ordering.
func (r *Request) Sort() (SortOrder, SortTarget) {
	return r.sortOrder, r.sortTarget
}

// SetSerializable allows the read to be served from a member's local
// state without going through consensus. Serializable reads are cheaper
// but may be stale; the default is linearizable.
func (r *Request) SetSerializable(serializable bool) {
	r.serializable = serializable
}

// SetKeysOnly requests keys without value payloads.
// Keys-only conflicts with count-only, which suppresses keys as well.
func (r *Request) SetKeysOnly(keysOnly bool) error {
	if keysOnly && r.countOnly {
		return ErrKeysAndCountOnly
	}

	r.keysOnly = keysOnly

	return nil
}

// SetCountOnly requests only the number of matching keys, suppressing
// both key and value payloads.
func (r *Request) SetCountOnly(countOnly bool) error {
	if countOnly && r.keysOnly {
		return ErrKeysAndCountOnly
	}

	r.countOnly = countOnly

	return nil
}

// SetMinModRevision filters out keys last modified before revision.
func (r *Request) SetMinModRevision(revision int64) error {
	if revision < 0 {
		return ErrNegativeRevision
	}

	r.minModRevision = revision

	return nil
}

// SetMaxModRevision filters out keys last modified after revision.
func (r *Request) SetMaxModRevision(revision int64) error {
	if revision < 0 {
		return ErrNegativeRevision
	}

	r.maxModRevision = revision

	return nil
}

// SetMinCreateRevision filters out keys created before revision.
func (r *Request) SetMinCreateRevision(revision int64) error {
	if revision < 0 {
		return ErrNegativeRevision
	}

	r.minCreateRevision = revision

	return nil
}

// SetMaxCreateRevision filters out keys created after revision.
func (r *Request) SetMaxCreateRevision(revision int64) error {
	if revision < 0 {
		return ErrNegativeRevision
	}

	r.maxCreateRevision = revision

	return nil
}

// KeyRange returns the key range this request reads.
func (r *Request) KeyRange() keyrange.KeyRange {
	return r.keyRange
}

// IsSingleKey reports whether the request addresses exactly one key,
// in which case the response holds at most one entry.
func (r *Request) IsSingleKey() bool {
	return r.keyRange.IsSingleKey()
}

// ForRange returns a copy of the request reading the given key range
// with all filters preserved. It is used to continue a limited read on
// the next page of results.
func (r *Request) ForRange(keyRange keyrange.KeyRange) *Request {
	next := *r
	next.keyRange = keyRange

	return &next
}

// ToPB converts the request to its wire message.
func (r *Request) ToPB() *etcdserverpb.RangeRequest {
	return &etcdserverpb.RangeRequest{
		Key:               r.keyRange.Key(),
		RangeEnd:          r.keyRange.RangeEnd(),
		Limit:             r.limit,
		Revision:          r.revision,
		SortOrder:         etcdserverpb.RangeRequest_SortOrder(r.sortOrder),
		SortTarget:        etcdserverpb.RangeRequest_SortTarget(r.sortTarget),
		Serializable:      r.serializable,
		KeysOnly:          r.keysOnly,
		CountOnly:         r.countOnly,
		MinModRevision:    r.minModRevision,
		MaxModRevision:    r.maxModRevision,
		MinCreateRevision: r.minCreateRevision,
		MaxCreateRevision: r.maxCreateRevision,
	}
}
