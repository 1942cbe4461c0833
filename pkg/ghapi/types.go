package ghapi

import (
	"encoding/json"
	"time"
)

// BasicUser is the short user record embedded in other resources.
type BasicUser struct {
	Login string `json:"login" yaml:"login"`
	URL   string `json:"url"   yaml:"url"`
}

// User represents a full user profile.
type User struct {
	BasicUser `yaml:",inline"`

	ID          int64     `json:"id"           yaml:"id"`
	Name        string    `json:"name"         yaml:"name"`
	Company     string    `json:"company"      yaml:"company"`
	Blog        string    `json:"blog"         yaml:"blog"`
	Location    string    `json:"location"     yaml:"location"`
	Email       string    `json:"email"        yaml:"email"`
	Bio         string    `json:"bio"          yaml:"bio"`
	HTMLURL     string    `json:"html_url"     yaml:"html_url"`
	PublicRepos int       `json:"public_repos" yaml:"public_repos"`
	Followers   int       `json:"followers"    yaml:"followers"`
	Following   int       `json:"following"    yaml:"following"`
	CreatedAt   time.Time `json:"created_at"   yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   yaml:"updated_at"`
}

// BasicRepository identifies a repository by owner and name.
type BasicRepository struct {
	Owner       *BasicUser `json:"owner"       yaml:"owner"`
	Name        string     `json:"name"        yaml:"name"`
	Description string     `json:"description" yaml:"description"`
}

// OwnerLogin returns the owner's login or an empty string when no owner is set.
func (r *BasicRepository) OwnerLogin() string {
	if r == nil || r.Owner == nil {
		return ""
	}

	return r.Owner.Login
}

// Repository represents a full repository record.
type Repository struct {
	BasicRepository `yaml:",inline"`

	ID              int64        `json:"id"                    yaml:"id"`
	FullName        string       `json:"full_name"             yaml:"full_name"`
	Private         bool         `json:"private"               yaml:"private"`
	Fork            bool         `json:"fork"                  yaml:"fork"`
	HTMLURL         string       `json:"html_url"              yaml:"html_url"`
	URL             string       `json:"url"                   yaml:"url"`
	DefaultBranch   string       `json:"default_branch"        yaml:"default_branch"`
	Language        string       `json:"language"              yaml:"language"`
	StargazersCount int          `json:"stargazers_count"      yaml:"stargazers_count"`
	WatchersCount   int          `json:"watchers_count"        yaml:"watchers_count"`
	ForksCount      int          `json:"forks_count"           yaml:"forks_count"`
	OpenIssuesCount int          `json:"open_issues_count"     yaml:"open_issues_count"`
	License         *License     `json:"license,omitempty"     yaml:"license,omitempty"`
	Permissions     *Permissions `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	CreatedAt       time.Time    `json:"created_at"            yaml:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"            yaml:"updated_at"`
	PushedAt        time.Time    `json:"pushed_at"             yaml:"pushed_at"`
}

// License describes a repository license.
type License struct {
	Key    string `json:"key"     yaml:"key"`
	Name   string `json:"name"    yaml:"name"`
	SPDXID string `json:"spdx_id" yaml:"spdx_id"`
	URL    string `json:"url"     yaml:"url"`
}

// Permissions describes what the authenticated user may do with a repository.
type Permissions struct {
	Admin bool `json:"admin" yaml:"admin"`
	Push  bool `json:"push"  yaml:"push"`
	Pull  bool `json:"pull"  yaml:"pull"`
}

// RepositoryCreateRequest is the body of a repository creation call.
type RepositoryCreateRequest struct {
	Name        string `json:"name"                   yaml:"name"`
	Description string `json:"description,omitempty"  yaml:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"     yaml:"homepage,omitempty"`
	Private     bool   `json:"private"                yaml:"private"`
	HasIssues   *bool  `json:"has_issues,omitempty"   yaml:"has_issues,omitempty"`
	HasProjects *bool  `json:"has_projects,omitempty" yaml:"has_projects,omitempty"`
	HasWiki     *bool  `json:"has_wiki,omitempty"     yaml:"has_wiki,omitempty"`
	AutoInit    bool   `json:"auto_init,omitempty"    yaml:"auto_init,omitempty"`
}

// Branch represents a repository branch.
type Branch struct {
	Name      string      `json:"name"      yaml:"name"`
	Commit    BasicCommit `json:"commit"    yaml:"commit"`
	Protected bool        `json:"protected" yaml:"protected"`
}

// BasicCommit is the short commit record referenced by branches and parents.
type BasicCommit struct {
	SHA string `json:"sha" yaml:"sha"`
	URL string `json:"url" yaml:"url"`
}

// Commit represents a commit listing entry or a single commit.
type Commit struct {
	SHA       string        `json:"sha"       yaml:"sha"`
	HTMLURL   string        `json:"html_url"  yaml:"html_url"`
	Detail    CommitDetail  `json:"commit"    yaml:"commit"`
	Author    *BasicUser    `json:"author"    yaml:"author"`
	Committer *BasicUser    `json:"committer" yaml:"committer"`
	Parents   []BasicCommit `json:"parents"   yaml:"parents"`
}

// CommitDetail holds the git level data of a commit.
type CommitDetail struct {
	Message      string         `json:"message"       yaml:"message"`
	Author       CommitIdentity `json:"author"        yaml:"author"`
	Committer    CommitIdentity `json:"committer"     yaml:"committer"`
	CommentCount int            `json:"comment_count" yaml:"comment_count"`
}

// CommitIdentity is the git author or committer signature.
type CommitIdentity struct {
	Name  string    `json:"name"  yaml:"name"`
	Email string    `json:"email" yaml:"email"`
	Date  time.Time `json:"date"  yaml:"date"`
}

// GraphQLRequest is the body posted to the GraphQL endpoint.
type GraphQLRequest struct {
	Query     string                 `json:"query"               yaml:"query"`
	Variables map[string]interface{} `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// GraphQLResponse is the raw GraphQL reply; Data is left undecoded for the caller.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"             yaml:"-"`
	Errors []GraphQLError  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// GraphQLError is one entry of a GraphQL errors array.
type GraphQLError struct {
	Message string        `json:"message"        yaml:"message"`
	Path    []interface{} `json:"path,omitempty" yaml:"path,omitempty"`
}
