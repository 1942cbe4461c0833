package client

import (
	"context"

	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// UsersClient implements ghapi.UsersClient.
type UsersClient struct {
	transport Transport
}

// NewUsersClient creates a new users client.
func NewUsersClient(transport Transport) *UsersClient {
	return &UsersClient{
		transport: transport,
	}
}

// Current implements ghapi.UsersClient.Current.
func (c *UsersClient) Current(ctx context.Context, cache *ghapi.CurrentUserCache) *ghapi.Result[ghapi.User] {
	if cache != nil {
		if user, ok := cache.Get(); ok {
			return ghapi.SuccessResult(ghapi.MessageDataAlreadyLoaded, *user)
		}
	}

	resp, err := c.transport.Get(ctx, constants.APIPathCurrentUser, nil)
	result := classify[ghapi.User](resp, err, ghapi.MessageNotFound)

	if cache != nil {
		if user, ok := result.Payload(); ok {
			cache.Set(&user)
		}
	}

	return result
}

// Get implements ghapi.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, login string) *ghapi.Result[ghapi.User] {
	if login == "" {
		return ghapi.EmptyInputResult[ghapi.User]()
	}

	resp, err := c.transport.Get(ctx, formatPath(constants.APIPathUserTemplate, login), nil)

	return classify[ghapi.User](resp, err, ghapi.UserNotFoundMessage(login))
}

// GetForBasic implements ghapi.UsersClient.GetForBasic.
func (c *UsersClient) GetForBasic(ctx context.Context, user *ghapi.BasicUser) *ghapi.Result[ghapi.User] {
	if user == nil {
		return ghapi.EmptyInputResult[ghapi.User]()
	}

	return c.Get(ctx, user.Login)
}
