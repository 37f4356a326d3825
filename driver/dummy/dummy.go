// Package dummy provides a base in-memory implementation
// of the KV transport interface for demonstration and tests.
// It keeps only the latest state: historical reads below the compaction
// point fail the way a real store would, reads above it serve the
// current state.
package dummy

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"

	"github.com/tarantool/go-kvrpc/driver"
)

const (
	dummyClusterID = uint64(0xC1)
	dummyMemberID  = uint64(0x1)
	dummyRaftTerm  = uint64(2)
)

type entry struct {
	key            []byte
	value          []byte
	createRevision int64
	modRevision    int64
	version        int64
	lease          int64
}

// dummyStorage is a thread-safe structure that holds the key-value
// entries and revision counters.
type dummyStorage struct {
	entries         map[string]entry
	revision        int64
	compactRevision int64
	mu              sync.RWMutex
}

// Driver is an in-memory implementation of the KV transport interface.
type Driver struct {
	data dummyStorage
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// New creates an empty in-memory driver.
func New() *Driver {
	return &Driver{
		data: dummyStorage{
			entries:         make(map[string]entry),
			revision:        1,
			compactRevision: 0,
			mu:              sync.RWMutex{},
		},
	}
}

// Put stores a value, bumping the store revision. It exists to seed the
// driver from tests and examples; writes are not part of the transport
// interface. The new store revision is returned.
func (d *Driver) Put(key, value []byte) int64 {
	return d.PutWithLease(key, value, 0)
}

// PutWithLease stores a value with an attached lease id.
func (d *Driver) PutWithLease(key, value []byte, lease int64) int64 {
	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	d.data.revision++

	prev, existed := d.data.entries[string(key)]

	next := entry{
		key:            bytes.Clone(key),
		value:          bytes.Clone(value),
		createRevision: d.data.revision,
		modRevision:    d.data.revision,
		version:        1,
		lease:          lease,
	}
	if existed {
		next.createRevision = prev.createRevision
		next.version = prev.version + 1
	}

	d.data.entries[string(key)] = next

	return d.data.revision
}

// Compact drops the ability to read at revisions below rev, the way a
// real store forgets compacted history.
func (d *Driver) Compact(rev int64) {
	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	if rev > d.data.compactRevision {
		d.data.compactRevision = rev
	}
}

// Revision returns the current store revision.
func (d *Driver) Revision() int64 {
	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	return d.data.revision
}

// Range executes a range read against the in-memory state.
func (d *Driver) Range(
	ctx context.Context,
	req *etcdserverpb.RangeRequest,
) (*etcdserverpb.RangeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("range canceled: %w", err)
	}

	d.data.mu.RLock()
	defer d.data.mu.RUnlock()

	if req.Revision > 0 && req.Revision <= d.data.compactRevision {
		return nil, fmt.Errorf("%w: revision %d, compacted at %d",
			driver.ErrRevisionCompacted, req.Revision, d.data.compactRevision)
	}

	matched := d.match(req.Key, req.RangeEnd)
	matched = filterRevisions(matched, req)
	sortEntries(matched, req.SortOrder, req.SortTarget)

	count := int64(len(matched))

	more := false
	if req.Limit > 0 && count > req.Limit {
		matched = matched[:req.Limit]
		more = true
	}

	var kvs []*mvccpb.KeyValue

	if !req.CountOnly {
		kvs = make([]*mvccpb.KeyValue, 0, len(matched))
		for _, e := range matched {
			pb := &mvccpb.KeyValue{
				Key:            e.key,
				Value:          e.value,
				CreateRevision: e.createRevision,
				ModRevision:    e.modRevision,
				Version:        e.version,
				Lease:          e.lease,
			}
			if req.KeysOnly {
				pb.Value = nil
			}

			kvs = append(kvs, pb)
		}
	}

	return &etcdserverpb.RangeResponse{
		Header: d.header(),
		Kvs:    kvs,
		More:   more,
		Count:  count,
	}, nil
}

// DeleteRange executes a range deletion against the in-memory state.
func (d *Driver) DeleteRange(
	ctx context.Context,
	req *etcdserverpb.DeleteRangeRequest,
) (*etcdserverpb.DeleteRangeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("delete range canceled: %w", err)
	}

	d.data.mu.Lock()
	defer d.data.mu.Unlock()

	matched := d.match(req.Key, req.RangeEnd)

	var prevKVs []*mvccpb.KeyValue

	for _, e := range matched {
		if req.PrevKv {
			prevKVs = append(prevKVs, &mvccpb.KeyValue{
				Key:            e.key,
				Value:          e.value,
				CreateRevision: e.createRevision,
				ModRevision:    e.modRevision,
				Version:        e.version,
				Lease:          e.lease,
			})
		}

		delete(d.data.entries, string(e.key))
	}

	if len(matched) > 0 {
		d.data.revision++
	}

	return &etcdserverpb.DeleteRangeResponse{
		Header:  d.header(),
		Deleted: int64(len(matched)),
		PrevKvs: prevKVs,
	}, nil
}

// header builds a response header at the current revision.
// Callers must hold the mutex.
func (d *Driver) header() *etcdserverpb.ResponseHeader {
	return &etcdserverpb.ResponseHeader{
		ClusterId: dummyClusterID,
		MemberId:  dummyMemberID,
		Revision:  d.data.revision,
		RaftTerm:  dummyRaftTerm,
	}
}

// match selects entries addressed by (key, rangeEnd) in key order.
// An empty rangeEnd addresses the single key, the zero-byte sentinel
// means no upper bound. Callers must hold the mutex.
func (d *Driver) match(key, rangeEnd []byte) []entry {
	var out []entry

	switch {
	case len(rangeEnd) == 0:
		if e, ok := d.data.entries[string(key)]; ok {
			out = append(out, e)
		}
	default:
		unbounded := len(rangeEnd) == 1 && rangeEnd[0] == 0x00

		for _, e := range d.data.entries {
			if bytes.Compare(e.key, key) < 0 {
				continue
			}

			if !unbounded && bytes.Compare(e.key, rangeEnd) >= 0 {
				continue
			}

			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].key, out[j].key) < 0
	})

	return out
}

// filterRevisions applies the optional modification and creation
// revision bounds of a range request.
func filterRevisions(entries []entry, req *etcdserverpb.RangeRequest) []entry {
	if req.MinModRevision == 0 && req.MaxModRevision == 0 &&
		req.MinCreateRevision == 0 && req.MaxCreateRevision == 0 {
		return entries
	}

	out := entries[:0]

	for _, e := range entries {
		if req.MinModRevision > 0 && e.modRevision < req.MinModRevision {
			continue
		}

		if req.MaxModRevision > 0 && e.modRevision > req.MaxModRevision {
			continue
		}

		if req.MinCreateRevision > 0 && e.createRevision < req.MinCreateRevision {
			continue
		}

		if req.MaxCreateRevision > 0 && e.createRevision > req.MaxCreateRevision {
			continue
		}

		out = append(out, e)
	}

	return out
}

// sortEntries orders entries per the requested sort. The store default
// is ascending by key, which match already produced.
func sortEntries(
	entries []entry,
	order etcdserverpb.RangeRequest_SortOrder,
	target etcdserverpb.RangeRequest_SortTarget,
) {
	if order == etcdserverpb.RangeRequest_NONE {
		return
	}

	less := func(a, b entry) bool {
		switch target {
		case etcdserverpb.RangeRequest_VERSION:
			return a.version < b.version
		case etcdserverpb.RangeRequest_CREATE:
			return a.createRevision < b.createRevision
		case etcdserverpb.RangeRequest_MOD:
			return a.modRevision < b.modRevision
		case etcdserverpb.RangeRequest_VALUE:
			return bytes.Compare(a.value, b.value) < 0
		case etcdserverpb.RangeRequest_KEY:
			return bytes.Compare(a.key, b.key) < 0
		default:
			return bytes.Compare(a.key, b.key) < 0
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if order == etcdserverpb.RangeRequest_DESCEND {
			return less(entries[j], entries[i])
		}

		return less(entries[i], entries[j])
	})
}
