package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	internalhttp "github.com/timmik994/GitHubApiLib/internal/http"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

var errTransportUnavailable = errors.New("transport unavailable")

// recordingTransport counts calls and fails every request.
type recordingTransport struct {
	calls atomic.Int32
}

func (t *recordingTransport) Get(ctx context.Context, path string, query url.Values) (*internalhttp.Response, error) {
	t.calls.Add(1)

	return nil, errTransportUnavailable
}

func (t *recordingTransport) Post(ctx context.Context, path string, body interface{}) (*internalhttp.Response, error) {
	t.calls.Add(1)

	return nil, errTransportUnavailable
}

// newTestClient starts a server for handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&ghapi.Config{
		APIEndpoint: server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	return client
}

// respond writes status and body.
func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
