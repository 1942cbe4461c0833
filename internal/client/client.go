package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/timmik994/GitHubApiLib/internal/auth"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/internal/http"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// Transport sends requests to the API and returns the raw response. A non-nil
// error means the request was never answered.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*http.Response, error)
	Post(ctx context.Context, path string, body interface{}) (*http.Response, error)
}

// Client implements the ghapi.Client interface.
type Client struct {
	transport    Transport
	tokenManager auth.TokenManager
	baseURL      string
	logger       ghapi.Logger

	// Resource clients
	users        ghapi.UsersClient
	repositories ghapi.RepositoriesClient
	branches     ghapi.BranchesClient
	commits      ghapi.CommitsClient
	graphQL      ghapi.GraphQLClient
}

// createTokenManager returns a static manager when a token is configured.
func createTokenManager(config *ghapi.Config) auth.TokenManager {
	if config.AccessToken == "" {
		return nil
	}

	return auth.NewStaticTokenManager(config.AccessToken)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ghapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts,
			http.WithLogger(&loggerAdapter{logger: config.Logger}),
			http.WithInterceptors(ghapi.DefaultInterceptorChain(config.Logger)),
		)
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a client for the API at config.APIEndpoint.
func New(config *ghapi.Config) (*Client, error) {
	if config == nil {
		return nil, ghapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	tokenManager := createTokenManager(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		transport:    httpClient,
		tokenManager: tokenManager,
		baseURL:      httpClient.BaseURL(),
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTransport creates a client that sends every request through transport.
func NewWithTransport(transport Transport) (*Client, error) {
	if transport == nil {
		return nil, ghapi.ErrTransportRequired
	}

	client := &Client{transport: transport}
	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// Users implements ghapi.Client.Users.
func (c *Client) Users() ghapi.UsersClient {
	return c.users
}

// Repositories implements ghapi.Client.Repositories.
func (c *Client) Repositories() ghapi.RepositoriesClient {
	return c.repositories
}

// Branches implements ghapi.Client.Branches.
func (c *Client) Branches() ghapi.BranchesClient {
	return c.branches
}

// Commits implements ghapi.Client.Commits.
func (c *Client) Commits() ghapi.CommitsClient {
	return c.commits
}

// GraphQL implements ghapi.Client.GraphQL.
func (c *Client) GraphQL() ghapi.GraphQLClient {
	return c.graphQL
}

func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.transport)
	c.repositories = NewRepositoriesClient(c.transport)
	c.branches = NewBranchesClient(c.transport)
	c.commits = NewCommitsClient(c.transport)
	c.graphQL = NewGraphQLClient(c.transport)
}

// classify converts a transport outcome into a result. Transport failures
// become UnknownError results that keep the cause.
func classify[T any](resp *http.Response, err error, notFoundMessage string) *ghapi.Result[T] {
	if err != nil {
		return ghapi.TransportErrorResult[T](err)
	}

	return ghapi.Classify[T](resp.StatusCode, bytes.NewReader(resp.Body), notFoundMessage)
}

// formatPath fills a path template with escaped segments.
func formatPath(template string, segments ...string) string {
	args := make([]interface{}, 0, len(segments))
	for _, segment := range segments {
		args = append(args, url.PathEscape(segment))
	}

	return fmt.Sprintf(template, args...)
}

// loggerAdapter adapts ghapi.Logger to http.Logger.
type loggerAdapter struct {
	logger ghapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
