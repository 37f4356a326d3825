package tnt_test

import (
	"context"
	"fmt"
	"log"

	"go.etcd.io/etcd/api/v3/etcdserverpb"

	"github.com/tarantool/go-kvrpc/driver/tnt"
	kvTesting "github.com/tarantool/go-kvrpc/internal/testing"
)

func createRangeDriver() *tnt.Driver {
	mock := kvTesting.NewMockDoer(kvTesting.NewT(),
		kvTesting.NewMockResponse(kvTesting.NewT(), []any{
			map[string]any{
				"header": map[string]any{
					"cluster_id": 1,
					"member_id":  1,
					"revision":   1000,
					"raft_term":  1,
				},
				"kvs": []any{
					map[string]any{
						"key":             []byte("/config/app/version"),
						"value":           []byte("1.0.0"),
						"create_revision": 900,
						"mod_revision":    1000,
						"version":         1,
						"lease":           0,
					},
				},
				"more":  false,
				"count": 1,
			},
		}),
	)

	return tnt.New(mock)
}

// ExampleDriver_Range demonstrates a range read through the Tarantool
// stored functions.
func ExampleDriver_Range() {
	ctx := context.Background()

	driver := createRangeDriver()

	resp, err := driver.Range(ctx, &etcdserverpb.RangeRequest{
		Key:      []byte("/config/"),
		RangeEnd: []byte("/config0"),
	})
	if err != nil {
		log.Printf("range failed: %v", err)
		return
	}

	for _, kv := range resp.Kvs {
		fmt.Printf("%s = %s (mod revision %d)\n", kv.Key, kv.Value, kv.ModRevision)
	}

	fmt.Println("store revision:", resp.Header.Revision)
	// Output:
	// /config/app/version = 1.0.0 (mod revision 1000)
	// store revision: 1000
}
