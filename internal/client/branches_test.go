package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

func TestBranchesClient_List(t *testing.T) {
	t.Parallel()

	t.Run("lists branches", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/octocat/Hello-World/branches", r.URL.Path)
			respond(w, http.StatusOK, `[{"name":"main","commit":{"sha":"7fd1a60b01f91b314f59955a4e4d4e80d8edf11d",`+
				`"url":"https://api.github.com/repos/octocat/Hello-World/commits/7fd1a60"},"protected":true}]`)
		})

		result := client.Branches().List(context.Background(), "octocat", "Hello-World")
		require.True(t, result.IsSuccess())

		branches, ok := result.Payload()
		require.True(t, ok)
		require.Len(t, branches, 1)
		assert.Equal(t, "main", branches[0].Name)
		assert.True(t, branches[0].Protected)
		assert.Equal(t, "7fd1a60b01f91b314f59955a4e4d4e80d8edf11d", branches[0].Commit.SHA)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			respond(w, http.StatusNotFound, `{"message":"Not Found"}`)
		})

		result := client.Branches().ListForRepository(context.Background(), &ghapi.BasicRepository{
			Owner: &ghapi.BasicUser{Login: "octocat"},
			Name:  "missing",
		})
		assert.Equal(t, ghapi.StatusNotFound, result.Status())
		assert.Equal(t, "User octocat or repository missing not found.", result.Message())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		transport := &recordingTransport{}
		branches := NewBranchesClient(transport)

		assert.Equal(t, ghapi.StatusEmptyInput, branches.List(context.Background(), "", "Hello-World").Status())
		assert.Equal(t, ghapi.StatusEmptyInput, branches.List(context.Background(), "octocat", "").Status())
		assert.Equal(t, ghapi.StatusEmptyInput, branches.ListForRepository(context.Background(), nil).Status())
		assert.Equal(t, int32(0), transport.calls.Load())
	})
}
