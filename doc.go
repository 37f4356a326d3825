// Package kvrpc provides a typed request/response layer for
// revision-versioned key-value stores speaking the etcd KV protocol.
//
// Callers build a [github.com/tarantool/go-kvrpc/keyrange.KeyRange],
// wrap it into a range read or range deletion request, and execute it
// through a pluggable transport driver.
package kvrpc
