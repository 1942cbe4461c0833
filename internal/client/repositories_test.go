package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

const helloWorldJSON = `{"id":1296269,"name":"Hello-World","full_name":"octocat/Hello-World",` +
	`"owner":{"login":"octocat","url":"https://api.github.com/users/octocat"},` +
	`"description":"My first repo","default_branch":"main","stargazers_count":80}`

func TestRepositoriesClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("created without payload", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/repos", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var body ghapi.RepositoryCreateRequest

			err := json.NewDecoder(r.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "Hello-World", body.Name)
			assert.Equal(t, "My first repo", body.Description)

			respond(w, http.StatusCreated, helloWorldJSON)
		})

		result := client.Repositories().Create(context.Background(), &ghapi.RepositoryCreateRequest{
			Name:        "Hello-World",
			Description: "My first repo",
		})
		assert.Equal(t, ghapi.StatusSuccess, result.Status())
		assert.Equal(t, ghapi.MessageSuccess, result.Message())
		assert.False(t, result.HasPayload())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		transport := &recordingTransport{}
		repositories := NewRepositoriesClient(transport)

		assert.Equal(t, ghapi.StatusEmptyInput, repositories.Create(context.Background(), nil).Status())
		assert.Equal(t, ghapi.StatusEmptyInput, repositories.Create(context.Background(), &ghapi.RepositoryCreateRequest{}).Status())
		assert.Equal(t, int32(0), transport.calls.Load())
	})
}

func TestRepositoriesClient_ListForCurrentUser(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)
		respond(w, http.StatusOK, "["+helloWorldJSON+"]")
	})

	result := client.Repositories().ListForCurrentUser(context.Background())
	require.True(t, result.IsSuccess())

	repositories, ok := result.Payload()
	require.True(t, ok)
	require.Len(t, repositories, 1)
	assert.Equal(t, "octocat/Hello-World", repositories[0].FullName)
	assert.Equal(t, "octocat", repositories[0].OwnerLogin())
}

func TestRepositoriesClient_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  ghapi.Status
		wantMessage string
	}{
		{
			name:        "found",
			status:      http.StatusOK,
			body:        helloWorldJSON,
			wantStatus:  ghapi.StatusSuccess,
			wantMessage: ghapi.MessageSuccess,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"message":"Not Found"}`,
			wantStatus:  ghapi.StatusNotFound,
			wantMessage: "User octocat or repository Hello-World not found.",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"message":"Bad credentials"}`,
			wantStatus:  ghapi.StatusUnauthorized,
			wantMessage: ghapi.MessageUnauthorized,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        ``,
			wantStatus:  ghapi.StatusUnknownError,
			wantMessage: ghapi.MessageUnknownError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/octocat/Hello-World", r.URL.Path)
				respond(w, tt.status, tt.body)
			})

			result := client.Repositories().Get(context.Background(), "octocat", "Hello-World")
			assert.Equal(t, tt.wantStatus, result.Status())
			assert.Equal(t, tt.wantMessage, result.Message())
			assert.Equal(t, tt.wantStatus == ghapi.StatusSuccess, result.HasPayload())
		})
	}
}

func TestRepositoriesClient_GetForBasic(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/Hello-World", r.URL.Path)
		respond(w, http.StatusOK, helloWorldJSON)
	})

	result := client.Repositories().GetForBasic(context.Background(), &ghapi.BasicRepository{
		Owner: &ghapi.BasicUser{Login: "octocat"},
		Name:  "Hello-World",
	})
	assert.Equal(t, ghapi.StatusSuccess, result.Status())

	result = client.Repositories().GetForBasic(context.Background(), &ghapi.BasicRepository{Name: "Hello-World"})
	assert.Equal(t, ghapi.StatusEmptyInput, result.Status())

	result = client.Repositories().GetForBasic(context.Background(), nil)
	assert.Equal(t, ghapi.StatusEmptyInput, result.Status())
}

func TestRepositoriesClient_ListForUser(t *testing.T) {
	t.Parallel()

	t.Run("not found names the user", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/ghost/repos", r.URL.Path)
			respond(w, http.StatusNotFound, `{"message":"Not Found"}`)
		})

		result := client.Repositories().ListForUser(context.Background(), "ghost")
		assert.Equal(t, ghapi.StatusNotFound, result.Status())
		assert.Equal(t, "User ghost not found.", result.Message())
	})

	t.Run("basic user", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			respond(w, http.StatusOK, "[]")
		})

		result := client.Repositories().ListForBasicUser(context.Background(), &ghapi.BasicUser{Login: "octocat"})
		require.True(t, result.IsSuccess())

		repositories, ok := result.Payload()
		require.True(t, ok)
		assert.Empty(t, repositories)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		transport := &recordingTransport{}
		repositories := NewRepositoriesClient(transport)

		assert.Equal(t, ghapi.StatusEmptyInput, repositories.ListForUser(context.Background(), "").Status())
		assert.Equal(t, ghapi.StatusEmptyInput, repositories.ListForBasicUser(context.Background(), nil).Status())
		assert.Equal(t, int32(0), transport.calls.Load())
	})
}
