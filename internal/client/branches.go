package client

import (
	"context"

	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// BranchesClient implements ghapi.BranchesClient.
type BranchesClient struct {
	transport Transport
}

// NewBranchesClient creates a new branches client.
func NewBranchesClient(transport Transport) *BranchesClient {
	return &BranchesClient{
		transport: transport,
	}
}

// List implements ghapi.BranchesClient.List.
func (c *BranchesClient) List(ctx context.Context, owner, repository string) *ghapi.Result[[]ghapi.Branch] {
	if owner == "" || repository == "" {
		return ghapi.EmptyInputResult[[]ghapi.Branch]()
	}

	resp, err := c.transport.Get(ctx, formatPath(constants.APIPathRepositoryBranchesTemplate, owner, repository), nil)

	return classify[[]ghapi.Branch](resp, err, ghapi.RepositoryNotFoundMessage(owner, repository))
}

// ListForRepository implements ghapi.BranchesClient.ListForRepository.
func (c *BranchesClient) ListForRepository(ctx context.Context, repository *ghapi.BasicRepository) *ghapi.Result[[]ghapi.Branch] {
	if repository == nil {
		return ghapi.EmptyInputResult[[]ghapi.Branch]()
	}

	return c.List(ctx, repository.OwnerLogin(), repository.Name)
}
