package kvrpc_test

import (
	"context"
	"fmt"
	"log"

	kvrpc "github.com/tarantool/go-kvrpc"
	"github.com/tarantool/go-kvrpc/deleteop"
	"github.com/tarantool/go-kvrpc/driver/dummy"
	"github.com/tarantool/go-kvrpc/keyrange"
	"github.com/tarantool/go-kvrpc/rangeop"
)

func seededClient() kvrpc.KV {
	d := dummy.New()
	d.Put([]byte("/app/host"), []byte("localhost"))
	d.Put([]byte("/app/port"), []byte("8080"))
	d.Put([]byte("/other"), []byte("x"))

	return kvrpc.New(d)
}

// ExampleKV_Range demonstrates a prefix read with a limit.
func ExampleKV_Range() {
	ctx := context.Background()
	client := seededClient()

	keyRange, err := keyrange.Prefix([]byte("/app/"))
	if err != nil {
		log.Fatal(err)
	}

	req := rangeop.NewRequest(keyRange)
	if err := req.SetLimit(10); err != nil {
		log.Fatal(err)
	}

	resp, err := client.Range(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	for _, entry := range resp.TakeKVs() {
		fmt.Printf("%s = %s\n", entry.Key, entry.Value)
	}

	fmt.Println("more:", resp.More())
	// Output:
	// /app/host = localhost
	// /app/port = 8080
	// more: false
}

// ExampleKV_Delete demonstrates deleting a prefix with previous-value
// capture.
func ExampleKV_Delete() {
	ctx := context.Background()
	client := seededClient()

	keyRange, err := keyrange.Prefix([]byte("/app/"))
	if err != nil {
		log.Fatal(err)
	}

	req := deleteop.NewRequest(keyRange)
	req.SetPrevKV(true)

	resp, err := client.Delete(ctx, req)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("deleted:", resp.Deleted())

	for _, entry := range resp.TakePrevKVs() {
		fmt.Printf("was: %s = %s\n", entry.Key, entry.Value)
	}
	// Output:
	// deleted: 2
	// was: /app/host = localhost
	// was: /app/port = 8080
}

// ExampleKV_RangeAll demonstrates client-driven pagination over a full
// key space.
func ExampleKV_RangeAll() {
	ctx := context.Background()

	d := dummy.New()
	for i := range 5 {
		d.Put(fmt.Appendf(nil, "k%d", i), fmt.Appendf(nil, "v%d", i))
	}

	client := kvrpc.New(d, kvrpc.WithPageLimit(2))

	kvs, err := client.RangeAll(ctx, rangeop.NewRequest(keyrange.All()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("total:", len(kvs))
	// Output:
	// total: 5
}
