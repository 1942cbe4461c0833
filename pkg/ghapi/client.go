package ghapi

import (
	"context"
	"time"
)

// UsersClient reads user profiles.
type UsersClient interface {
	// Current returns the authenticated user. When cache already holds a user it
	// is returned with MessageDataAlreadyLoaded and no request is sent; a nil
	// cache always fetches.
	Current(ctx context.Context, cache *CurrentUserCache) *Result[User]
	Get(ctx context.Context, login string) *Result[User]
	GetForBasic(ctx context.Context, user *BasicUser) *Result[User]
}

// RepositoriesClient reads and creates repositories.
type RepositoriesClient interface {
	Create(ctx context.Context, request *RepositoryCreateRequest) *Result[Repository]
	ListForCurrentUser(ctx context.Context) *Result[[]Repository]
	Get(ctx context.Context, owner, name string) *Result[Repository]
	GetForBasic(ctx context.Context, repository *BasicRepository) *Result[Repository]
	ListForUser(ctx context.Context, login string) *Result[[]Repository]
	ListForBasicUser(ctx context.Context, user *BasicUser) *Result[[]Repository]
}

// BranchesClient lists repository branches.
type BranchesClient interface {
	List(ctx context.Context, owner, repository string) *Result[[]Branch]
	ListForRepository(ctx context.Context, repository *BasicRepository) *Result[[]Branch]
}

// CommitsClient reads commits.
type CommitsClient interface {
	List(ctx context.Context, owner, repository string) *Result[[]Commit]
	ListForRepository(ctx context.Context, repository *BasicRepository) *Result[[]Commit]
	ListForBranch(ctx context.Context, owner, repository, branch string) *Result[[]Commit]
	ListForRepositoryBranch(ctx context.Context, repository *BasicRepository, branch *Branch) *Result[[]Commit]
	Get(ctx context.Context, owner, repository, sha string) *Result[Commit]
	GetForBasic(ctx context.Context, commit *BasicCommit) *Result[Commit]
}

// GraphQLClient posts queries to the GraphQL endpoint.
type GraphQLClient interface {
	Query(ctx context.Context, request *GraphQLRequest) *Result[GraphQLResponse]
}

// Client provides access to all resource clients.
type Client interface {
	Users() UsersClient
	Repositories() RepositoriesClient
	Branches() BranchesClient
	Commits() CommitsClient
	GraphQL() GraphQLClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout bounds every request regardless. Retries are
// a transport concern and are disabled unless RetryMax is positive.
type Config struct {
	// APIEndpoint is the base URL of the API (e.g. "https://api.github.com").
	// ghclient.New trims a trailing slash and adds "https://" when no scheme is present.
	APIEndpoint string
	// AccessToken is sent as a Bearer token when set.
	AccessToken string
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds a single request including retries.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of retries for connection errors, 429 and 5xx.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}
