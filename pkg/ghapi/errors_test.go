package ghapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	apiErr, err := ghapi.ParseAPIError([]byte(`{"message":"Bad credentials","documentation_url":"https://docs.github.com/rest"}`))
	require.NoError(t, err)
	assert.Equal(t, "Bad credentials", apiErr.Message)
	assert.Equal(t, "Bad credentials (see https://docs.github.com/rest)", apiErr.Error())

	apiErr, err = ghapi.ParseAPIError([]byte(`{"message":"Not Found"}`))
	require.NoError(t, err)
	assert.Equal(t, "Not Found", apiErr.Error())

	_, err = ghapi.ParseAPIError([]byte(`{}`))
	require.ErrorIs(t, err, ghapi.ErrNoErrorMessage)

	_, err = ghapi.ParseAPIError([]byte(`not json`))
	require.Error(t, err)
}

func TestMessageHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "User octocat not found.", ghapi.UserNotFoundMessage("octocat"))
	assert.Equal(t, "User octocat or repository hello not found.", ghapi.RepositoryNotFoundMessage("octocat", "hello"))
	assert.Equal(t, "User octocat or repository hello or branch main not found.",
		ghapi.BranchNotFoundMessage("octocat", "hello", "main"))
	assert.Equal(t, "JSON object from server has invalid format: oops", ghapi.InvalidJSONMessage("oops"))
}
