package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/timmik994/GitHubApiLib/pkg/ghclient"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// envelope mirrors the JSON projection of a result.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

type testServer struct {
	server *httptest.Server
	calls  atomic.Int32
}

// newTestDispatcher starts a server running handler and returns a dispatcher
// writing JSON to the returned buffer.
func newTestDispatcher(t *testing.T, handler http.HandlerFunc) (*Dispatcher, *bytes.Buffer, *testServer) {
	t.Helper()

	ts := &testServer{}
	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(ts.server.Close)

	client, err := ghclient.NewWithToken(ts.server.URL, "test-token")
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return NewDispatcher(client, out, "json"), out, ts
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// decodeEnvelopes splits the JSON documents written to out.
func decodeEnvelopes(t *testing.T, out *bytes.Buffer) []envelope {
	t.Helper()

	var envelopes []envelope

	decoder := json.NewDecoder(bytes.NewReader(out.Bytes()))
	for decoder.More() {
		var env envelope
		require.NoError(t, decoder.Decode(&env))

		envelopes = append(envelopes, env)
	}

	return envelopes
}
