package kv

import (
	"errors"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
)

// ErrMissingHeader is returned when a response carries no header but the
// caller asked for revision or cluster metadata. Defaulting to 0 is
// forbidden here since 0 looks like a valid revision.
var ErrMissingHeader = errors.New("response header is missing")

// ResponseHeader carries cluster metadata attached to every store response.
type ResponseHeader struct {
	// ClusterID is the id of the cluster that produced the response.
	ClusterID uint64
	// MemberID is the id of the member that produced the response.
	MemberID uint64
	// Revision is the store revision after the operation took effect.
	Revision int64
	// RaftTerm is the raft term of the responding member.
	RaftTerm uint64
}

// HeaderFromPB decodes a wire response header. The second return value
// reports whether a header was present at all.
func HeaderFromPB(pb *etcdserverpb.ResponseHeader) (ResponseHeader, bool) {
	if pb == nil {
		return ResponseHeader{}, false
	}

	return ResponseHeader{
		ClusterID: pb.ClusterId,
		MemberID:  pb.MemberId,
		Revision:  pb.Revision,
		RaftTerm:  pb.RaftTerm,
	}, true
}
