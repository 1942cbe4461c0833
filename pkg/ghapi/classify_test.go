package ghapi_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

var errBrokenBody = errors.New("connection reset")

func TestClassify_UnmodeledStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []int{0, 100, 202, 204, 301, 304, 400, 403, 409, 422, 429, 500, 502, 503} {
		result := ghapi.Classify[ghapi.BasicUser](code, strings.NewReader(`{"login":"testuser"}`), "not found")

		assert.Equal(t, ghapi.StatusUnknownError, result.Status(), "code %d", code)
		assert.Equal(t, ghapi.MessageUnknownError, result.Message(), "code %d", code)
		assert.False(t, result.HasPayload(), "code %d", code)
	}
}

func TestClassify_NotFound(t *testing.T) {
	t.Parallel()

	result := ghapi.Classify[ghapi.BasicUser](404, strings.NewReader(`{"message":"Not Found"}`), "not found point reached")

	assert.Equal(t, ghapi.StatusNotFound, result.Status())
	assert.Equal(t, "not found point reached", result.Message())
	assert.False(t, result.HasPayload())
}

func TestClassify_Unauthorized(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", `{"login":"testuser","url":"testUrl"}`, "invalid json"} {
		result := ghapi.Classify[ghapi.BasicUser](401, strings.NewReader(body), "not found")

		assert.Equal(t, ghapi.StatusUnauthorized, result.Status())
		assert.Equal(t, ghapi.MessageUnauthorized, result.Message())
		assert.False(t, result.HasPayload())
	}
}

func TestClassify_Created(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", `{"name":"repo"}`, "invalid json"} {
		result := ghapi.Classify[ghapi.Repository](201, strings.NewReader(body), "not found")

		assert.Equal(t, ghapi.StatusSuccess, result.Status())
		assert.Equal(t, ghapi.MessageSuccess, result.Message())
		assert.False(t, result.HasPayload())
	}
}

func TestClassify_SingleRecord(t *testing.T) {
	t.Parallel()

	result := ghapi.Classify[ghapi.BasicUser](200, strings.NewReader(`{"login":"testuser","url":"testUrl"}`), "not found")

	require.Equal(t, ghapi.StatusSuccess, result.Status())
	assert.Equal(t, ghapi.MessageSuccess, result.Message())

	user, ok := result.Payload()
	require.True(t, ok)
	assert.Equal(t, "testuser", user.Login)
	assert.Equal(t, "testUrl", user.URL)
}

func TestClassify_Sequence(t *testing.T) {
	t.Parallel()

	body := `[{"login":"testuser","url":"testUrl"},{"login":"otheruser","url":"otherUrl"}]`
	result := ghapi.Classify[[]ghapi.BasicUser](200, strings.NewReader(body), "not found")

	require.Equal(t, ghapi.StatusSuccess, result.Status())

	users, ok := result.Payload()
	require.True(t, ok)
	require.Len(t, users, 2)
	assert.Equal(t, "otheruser", users[1].Login)
}

func TestClassify_MalformedPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "invalid json"},
		{name: "wrong shape", body: `[{"login":"testuser"}]`},
		{name: "empty body", body: ""},
		{name: "truncated", body: `{"login":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ghapi.Classify[ghapi.BasicUser](200, strings.NewReader(tt.body), "not found")

			assert.Equal(t, ghapi.StatusMalformedPayload, result.Status())
			assert.Equal(t, ghapi.MessageInvalidJSON+": "+tt.body, result.Message())
			assert.True(t, strings.HasSuffix(result.Message(), ": "+tt.body))
			assert.False(t, result.HasPayload())
		})
	}
}

func TestClassify_InvalidJSONMessageEndsWithBody(t *testing.T) {
	t.Parallel()

	result := ghapi.Classify[ghapi.BasicUser](200, strings.NewReader("invalid json"), "not found")

	assert.True(t, strings.HasSuffix(result.Message(), ": invalid json"))
}

func TestClassify_NilBody(t *testing.T) {
	t.Parallel()

	result := ghapi.Classify[ghapi.BasicUser](200, nil, "not found")
	assert.Equal(t, ghapi.StatusMalformedPayload, result.Status())
	assert.Equal(t, ghapi.MessageInvalidJSON+": ", result.Message())

	created := ghapi.Classify[ghapi.BasicUser](201, nil, "not found")
	assert.Equal(t, ghapi.StatusSuccess, created.Status())
}

func TestClassify_BodyReadFailure(t *testing.T) {
	t.Parallel()

	body := io.MultiReader(strings.NewReader(`{"login":`), iotest.ErrReader(errBrokenBody))
	result := ghapi.Classify[ghapi.BasicUser](200, body, "not found")

	assert.Equal(t, ghapi.StatusMalformedPayload, result.Status())
	assert.Equal(t, ghapi.MessageInvalidJSON+`: {"login":`, result.Message())
	assert.False(t, result.HasPayload())
}
