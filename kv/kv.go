// Package kv provides key-value data structures for storage responses.
// It defines the core KeyValue and ResponseHeader types used throughout
// the client.
package kv

import (
	"go.etcd.io/etcd/api/v3/mvccpb"
)

// KeyValue represents a stored key-value pair with revision metadata.
// It is a decoded snapshot of a store entry, never a live handle.
type KeyValue struct {
	// Key is the serialized representation of the key.
	Key []byte
	// Value is the serialized representation of the value.
	Value []byte

	// CreateRevision is the store revision at which this key was created.
	CreateRevision int64
	// ModRevision is the revision number of the last modification to this key.
	ModRevision int64
	// Version counts writes to this key since creation, starting at 1.
	Version int64
	// Lease is the id of the lease attached to this key, 0 if none.
	Lease int64
}

// FromPB decodes a wire key-value message. A nil message decodes to the
// zero KeyValue.
func FromPB(pb *mvccpb.KeyValue) KeyValue {
	if pb == nil {
		return KeyValue{}
	}

	return KeyValue{
		Key:            pb.Key,
		Value:          pb.Value,
		CreateRevision: pb.CreateRevision,
		ModRevision:    pb.ModRevision,
		Version:        pb.Version,
		Lease:          pb.Lease,
	}
}

// FromPBs decodes a slice of wire key-value messages, skipping nil
// entries. It always returns a non-nil slice.
func FromPBs(pbs []*mvccpb.KeyValue) []KeyValue {
	out := make([]KeyValue, 0, len(pbs))
	for _, pb := range pbs {
		if pb == nil {
			continue
		}

		out = append(out, FromPB(pb))
	}

	return out
}
