package client

import (
	"context"

	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// RepositoriesClient implements ghapi.RepositoriesClient.
type RepositoriesClient struct {
	transport Transport
}

// NewRepositoriesClient creates a new repositories client.
func NewRepositoriesClient(transport Transport) *RepositoriesClient {
	return &RepositoriesClient{
		transport: transport,
	}
}

// Create implements ghapi.RepositoriesClient.Create. The API answers 201 on
// success, so the result carries no payload.
func (c *RepositoriesClient) Create(ctx context.Context, request *ghapi.RepositoryCreateRequest) *ghapi.Result[ghapi.Repository] {
	if request == nil || request.Name == "" {
		return ghapi.EmptyInputResult[ghapi.Repository]()
	}

	resp, err := c.transport.Post(ctx, constants.APIPathCurrentUserRepos, request)

	return classify[ghapi.Repository](resp, err, ghapi.MessageNotFound)
}

// ListForCurrentUser implements ghapi.RepositoriesClient.ListForCurrentUser.
func (c *RepositoriesClient) ListForCurrentUser(ctx context.Context) *ghapi.Result[[]ghapi.Repository] {
	resp, err := c.transport.Get(ctx, constants.APIPathCurrentUserRepos, nil)

	return classify[[]ghapi.Repository](resp, err, ghapi.MessageNotFound)
}

// Get implements ghapi.RepositoriesClient.Get.
func (c *RepositoriesClient) Get(ctx context.Context, owner, name string) *ghapi.Result[ghapi.Repository] {
	if owner == "" || name == "" {
		return ghapi.EmptyInputResult[ghapi.Repository]()
	}

	resp, err := c.transport.Get(ctx, formatPath(constants.APIPathRepositoryTemplate, owner, name), nil)

	return classify[ghapi.Repository](resp, err, ghapi.RepositoryNotFoundMessage(owner, name))
}

// GetForBasic implements ghapi.RepositoriesClient.GetForBasic.
func (c *RepositoriesClient) GetForBasic(ctx context.Context, repository *ghapi.BasicRepository) *ghapi.Result[ghapi.Repository] {
	if repository == nil {
		return ghapi.EmptyInputResult[ghapi.Repository]()
	}

	return c.Get(ctx, repository.OwnerLogin(), repository.Name)
}

// ListForUser implements ghapi.RepositoriesClient.ListForUser.
func (c *RepositoriesClient) ListForUser(ctx context.Context, login string) *ghapi.Result[[]ghapi.Repository] {
	if login == "" {
		return ghapi.EmptyInputResult[[]ghapi.Repository]()
	}

	resp, err := c.transport.Get(ctx, formatPath(constants.APIPathUserReposTemplate, login), nil)

	return classify[[]ghapi.Repository](resp, err, ghapi.UserNotFoundMessage(login))
}

// ListForBasicUser implements ghapi.RepositoriesClient.ListForBasicUser.
func (c *RepositoriesClient) ListForBasicUser(ctx context.Context, user *ghapi.BasicUser) *ghapi.Result[[]ghapi.Repository] {
	if user == nil {
		return ghapi.EmptyInputResult[[]ghapi.Repository]()
	}

	return c.ListForUser(ctx, user.Login)
}
