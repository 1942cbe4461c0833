package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Endpoints and request metadata.
const (
	// DefaultAPIEndpoint is the public REST endpoint of the hosting service.
	DefaultAPIEndpoint = "https://api.github.com"

	// DefaultUserAgent is sent when no user agent is configured.
	// The upstream API rejects requests without one.
	DefaultUserAgent = "ghapi-client"

	// JSONContentType is used for Accept and Content-Type headers.
	JSONContentType = "application/json"

	// HeaderUserAgent is the User-Agent header name.
	HeaderUserAgent = "User-Agent"

	// HeaderRequestID carries the per-request correlation id.
	HeaderRequestID = "X-Request-Id"
)

// API paths. Templates take path segments in the order they appear.
const (
	// APIPathCurrentUser returns the authenticated user.
	APIPathCurrentUser = "/user"

	// APIPathUserTemplate returns a user by login.
	APIPathUserTemplate = "/users/%s"

	// APIPathCurrentUserRepos lists and creates repositories of the authenticated user.
	APIPathCurrentUserRepos = "/user/repos"

	// APIPathRepositoryTemplate returns one repository by owner and name.
	APIPathRepositoryTemplate = "/repos/%s/%s"

	// APIPathUserReposTemplate lists the public repositories of a user.
	APIPathUserReposTemplate = "/users/%s/repos"

	// APIPathRepositoryCommitsTemplate lists commits of the default branch.
	APIPathRepositoryCommitsTemplate = "/repos/%s/%s/commits"

	// APIPathCommitTemplate returns one commit by sha.
	APIPathCommitTemplate = "/repos/%s/%s/commits/%s"

	// APIPathRepositoryBranchesTemplate lists branches of a repository.
	APIPathRepositoryBranchesTemplate = "/repos/%s/%s/branches"

	// APIPathGraphQL is the GraphQL endpoint, relative to the API root.
	APIPathGraphQL = "/graphql"

	// QueryParamSHA selects the branch or sha a commit listing starts from.
	QueryParamSHA = "sha"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits for the transport. Retries are off unless configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Validation and limits.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2

	// ShortSHALength is how many characters of a sha tables display.
	ShortSHALength = 7

	// DescriptionTruncationLimit caps descriptions in table output.
	DescriptionTruncationLimit = 60
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// ShellPrompt is printed before every line in interactive mode.
	ShellPrompt = "ghapi> "
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
