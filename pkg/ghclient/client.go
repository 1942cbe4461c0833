package ghclient

import (
	"fmt"
	"strings"

	"github.com/timmik994/GitHubApiLib/internal/client"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// New creates a GitHub API client. config is not modified.
func New(config *ghapi.Config) (ghapi.Client, error) {
	if config == nil {
		return nil, ghapi.ErrConfigRequired
	}

	normalized := *config
	normalized.APIEndpoint = NormalizeEndpoint(config.APIEndpoint)

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates an unauthenticated client for endpoint.
func NewWithEndpoint(endpoint string) (ghapi.Client, error) {
	return New(&ghapi.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithToken creates a client that authenticates with an access token.
func NewWithToken(endpoint, token string) (ghapi.Client, error) {
	return New(&ghapi.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NormalizeEndpoint trims trailing slashes, adds https:// when no scheme is
// given and falls back to the public API for an empty endpoint.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
