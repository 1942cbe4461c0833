package client

import (
	"context"
	"net/url"

	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// CommitsClient implements ghapi.CommitsClient.
type CommitsClient struct {
	transport Transport
}

// NewCommitsClient creates a new commits client.
func NewCommitsClient(transport Transport) *CommitsClient {
	return &CommitsClient{
		transport: transport,
	}
}

// List implements ghapi.CommitsClient.List.
func (c *CommitsClient) List(ctx context.Context, owner, repository string) *ghapi.Result[[]ghapi.Commit] {
	if owner == "" || repository == "" {
		return ghapi.EmptyInputResult[[]ghapi.Commit]()
	}

	resp, err := c.transport.Get(ctx, formatPath(constants.APIPathRepositoryCommitsTemplate, owner, repository), nil)

	return classify[[]ghapi.Commit](resp, err, ghapi.RepositoryNotFoundMessage(owner, repository))
}

// ListForRepository implements ghapi.CommitsClient.ListForRepository.
func (c *CommitsClient) ListForRepository(ctx context.Context, repository *ghapi.BasicRepository) *ghapi.Result[[]ghapi.Commit] {
	if repository == nil {
		return ghapi.EmptyInputResult[[]ghapi.Commit]()
	}

	return c.List(ctx, repository.OwnerLogin(), repository.Name)
}

// ListForBranch implements ghapi.CommitsClient.ListForBranch.
func (c *CommitsClient) ListForBranch(ctx context.Context, owner, repository, branch string) *ghapi.Result[[]ghapi.Commit] {
	if owner == "" || repository == "" || branch == "" {
		return ghapi.EmptyInputResult[[]ghapi.Commit]()
	}

	path := formatPath(constants.APIPathRepositoryCommitsTemplate, owner, repository)
	query := url.Values{constants.QueryParamSHA: []string{branch}}

	resp, err := c.transport.Get(ctx, path, query)

	return classify[[]ghapi.Commit](resp, err, ghapi.BranchNotFoundMessage(owner, repository, branch))
}

// ListForRepositoryBranch implements ghapi.CommitsClient.ListForRepositoryBranch.
func (c *CommitsClient) ListForRepositoryBranch(ctx context.Context, repository *ghapi.BasicRepository, branch *ghapi.Branch) *ghapi.Result[[]ghapi.Commit] {
	if repository == nil || branch == nil {
		return ghapi.EmptyInputResult[[]ghapi.Commit]()
	}

	return c.ListForBranch(ctx, repository.OwnerLogin(), repository.Name, branch.Name)
}

// Get implements ghapi.CommitsClient.Get.
func (c *CommitsClient) Get(ctx context.Context, owner, repository, sha string) *ghapi.Result[ghapi.Commit] {
	if owner == "" || repository == "" || sha == "" {
		return ghapi.EmptyInputResult[ghapi.Commit]()
	}

	resp, err := c.transport.Get(ctx, formatPath(constants.APIPathCommitTemplate, owner, repository, sha), nil)

	return classify[ghapi.Commit](resp, err, ghapi.MessageNotFound)
}

// GetForBasic implements ghapi.CommitsClient.GetForBasic. The commit is
// fetched from its own absolute URL.
func (c *CommitsClient) GetForBasic(ctx context.Context, commit *ghapi.BasicCommit) *ghapi.Result[ghapi.Commit] {
	if commit == nil || commit.URL == "" {
		return ghapi.EmptyInputResult[ghapi.Commit]()
	}

	resp, err := c.transport.Get(ctx, commit.URL, nil)

	return classify[ghapi.Commit](resp, err, ghapi.MessageNotFound)
}
