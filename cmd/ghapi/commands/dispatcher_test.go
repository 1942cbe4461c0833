package commands

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/command"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

func TestDispatcher_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantMethod string
		wantPath   string
		wantQuery  string
		response   string
	}{
		{
			name:       "user current",
			line:       "user current",
			wantMethod: http.MethodGet,
			wantPath:   "/user",
			response:   `{"login":"octocat"}`,
		},
		{
			name:       "user get by long flag",
			line:       "user get --user octocat",
			wantMethod: http.MethodGet,
			wantPath:   "/users/octocat",
			response:   `{"login":"octocat"}`,
		},
		{
			name:       "repo list for current user",
			line:       "repo list",
			wantMethod: http.MethodGet,
			wantPath:   "/user/repos",
			response:   `[]`,
		},
		{
			name:       "repo list for user",
			line:       "repo list -u octocat",
			wantMethod: http.MethodGet,
			wantPath:   "/users/octocat/repos",
			response:   `[]`,
		},
		{
			name:       "repo get",
			line:       "repo get -u octocat -r hello-world",
			wantMethod: http.MethodGet,
			wantPath:   "/repos/octocat/hello-world",
			response:   `{"name":"hello-world"}`,
		},
		{
			name:       "branch list",
			line:       "branch list -u octocat -r hello-world",
			wantMethod: http.MethodGet,
			wantPath:   "/repos/octocat/hello-world/branches",
			response:   `[{"name":"main","commit":{"sha":"abc"}}]`,
		},
		{
			name:       "commit list",
			line:       "commit list -u octocat -r hello-world",
			wantMethod: http.MethodGet,
			wantPath:   "/repos/octocat/hello-world/commits",
			response:   `[]`,
		},
		{
			name:       "commit list for branch",
			line:       "commit list -u octocat -r hello-world -b develop",
			wantMethod: http.MethodGet,
			wantPath:   "/repos/octocat/hello-world/commits",
			wantQuery:  "sha=develop",
			response:   `[]`,
		},
		{
			name:       "commit get",
			line:       "commit get -u octocat -r hello-world --sha 6dcb09b",
			wantMethod: http.MethodGet,
			wantPath:   "/repos/octocat/hello-world/commits/6dcb09b",
			response:   `{"sha":"6dcb09b"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotMethod, gotPath, gotQuery string

			dispatcher, out, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				respond(w, http.StatusOK, tt.response)
			})

			err := dispatcher.Dispatch(context.Background(), tt.line)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, tt.wantQuery, gotQuery)

			envelopes := decodeEnvelopes(t, out)
			require.Len(t, envelopes, 1)
			assert.Equal(t, "Success", envelopes[0].Status)
			assert.Equal(t, ghapi.MessageSuccess, envelopes[0].Message)
		})
	}
}

func TestDispatcher_RepoCreate(t *testing.T) {
	t.Parallel()

	var (
		gotMethod string
		gotPath   string
		gotBody   ghapi.RepositoryCreateRequest
	)

	dispatcher, out, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		respond(w, http.StatusCreated, `{"name":"x"}`)
	})

	err := dispatcher.Dispatch(context.Background(), "repo create --name x -d demo --private")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/user/repos", gotPath)
	assert.Equal(t, "x", gotBody.Name)
	assert.Equal(t, "demo", gotBody.Description)
	assert.True(t, gotBody.Private)

	envelopes := decodeEnvelopes(t, out)
	require.Len(t, envelopes, 1)
	assert.Equal(t, "Success", envelopes[0].Status)
	assert.Empty(t, envelopes[0].Payload)
}

func TestDispatcher_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "unknown resource", line: "gist list", wantErr: constants.ErrUnknownResource},
		{name: "unknown action", line: "repo delete --name x", wantErr: constants.ErrUnknownAction},
		{name: "unknown action for branch", line: "branch create", wantErr: constants.ErrUnknownAction},
		{name: "single token", line: "repo", wantErr: command.ErrMissingResourceOrAction},
		{name: "empty line", line: "", wantErr: command.ErrMissingResourceOrAction},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dispatcher, out, server := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
				respond(w, http.StatusOK, `{}`)
			})

			err := dispatcher.Dispatch(context.Background(), tt.line)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Zero(t, server.calls.Load())
			assert.Empty(t, out.String())
		})
	}
}

func TestDispatcher_CurrentUserIsCached(t *testing.T) {
	t.Parallel()

	dispatcher, out, server := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, `{"login":"octocat","id":1}`)
	})

	require.NoError(t, dispatcher.Dispatch(context.Background(), "user current"))
	require.NoError(t, dispatcher.Dispatch(context.Background(), "user current"))

	assert.Equal(t, int32(1), server.calls.Load())

	envelopes := decodeEnvelopes(t, out)
	require.Len(t, envelopes, 2)
	assert.Equal(t, ghapi.MessageSuccess, envelopes[0].Message)
	assert.Equal(t, ghapi.MessageDataAlreadyLoaded, envelopes[1].Message)
	assert.JSONEq(t, string(envelopes[0].Payload), string(envelopes[1].Payload))
}

func TestDispatcher_FailedResults(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		dispatcher, out, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusNotFound, `{"message":"Not Found"}`)
		})

		err := dispatcher.Dispatch(context.Background(), "repo get -u octocat -r missing")
		require.ErrorIs(t, err, ErrRequestFailed)

		envelopes := decodeEnvelopes(t, out)
		require.Len(t, envelopes, 1)
		assert.Equal(t, "NotFound", envelopes[0].Status)
		assert.Equal(t, ghapi.RepositoryNotFoundMessage("octocat", "missing"), envelopes[0].Message)
		assert.Empty(t, envelopes[0].Payload)
	})

	t.Run("missing parameter is empty input", func(t *testing.T) {
		t.Parallel()

		dispatcher, out, server := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusOK, `{}`)
		})

		err := dispatcher.Dispatch(context.Background(), "user get")
		require.ErrorIs(t, err, ErrRequestFailed)
		assert.Zero(t, server.calls.Load())

		envelopes := decodeEnvelopes(t, out)
		require.Len(t, envelopes, 1)
		assert.Equal(t, "EmptyInput", envelopes[0].Status)
		assert.Equal(t, ghapi.MessageEmptyInput, envelopes[0].Message)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		dispatcher, out, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusUnauthorized, `{"message":"Bad credentials"}`)
		})

		err := dispatcher.Dispatch(context.Background(), "repo list")
		require.ErrorIs(t, err, ErrRequestFailed)

		envelopes := decodeEnvelopes(t, out)
		require.Len(t, envelopes, 1)
		assert.Equal(t, "Unauthorized", envelopes[0].Status)
		assert.Equal(t, ghapi.MessageUnauthorized, envelopes[0].Message)
	})
}

func TestDispatcher_TableOutput(t *testing.T) {
	t.Parallel()

	dispatcher, out, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, `[{"name":"hello-world","owner":{"login":"octocat"},"private":false,"language":"Go","stargazers_count":42}]`)
	})
	dispatcher.format = constants.FormatTable

	err := dispatcher.Dispatch(context.Background(), "repo list -u octocat")
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "hello-world")
	assert.Contains(t, output, "octocat")
	assert.Contains(t, output, "42")
}
