package testing

import (
	"github.com/tarantool/go-iproto"
	"github.com/tarantool/go-tarantool/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// MockResponse holds a canned iproto reply for MockDoer.
type MockResponse struct {
	header tarantool.Header
	data   []byte
}

// NewMockResponse creates a MockResponse carrying body as the call
// result. The body is what the stored function returns (the full
// multireturn array), encoded the way a real connection would see it.
func NewMockResponse(t T, body any) *MockResponse {
	t.Helper()

	data, err := msgpack.Marshal(map[int]any{
		int(iproto.IPROTO_DATA): body,
	})
	if err != nil {
		t.Fatalf("failed to encode mock response body: %s", err)
	}

	return &MockResponse{
		header: tarantool.Header{},
		data:   data,
	}
}

// NewMockRequest returns a request for futures created by MockDoer.
// A real call request is used so that response decoding behaves exactly
// as it does over a live connection.
func NewMockRequest() tarantool.Request {
	return tarantool.NewCallRequest("mock")
}
