package client

import (
	"context"

	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// GraphQLClient implements ghapi.GraphQLClient.
type GraphQLClient struct {
	transport Transport
}

// NewGraphQLClient creates a new GraphQL client.
func NewGraphQLClient(transport Transport) *GraphQLClient {
	return &GraphQLClient{
		transport: transport,
	}
}

// Query implements ghapi.GraphQLClient.Query. GraphQL level errors arrive with
// a 200 status and are left in the payload's Errors field.
func (c *GraphQLClient) Query(ctx context.Context, request *ghapi.GraphQLRequest) *ghapi.Result[ghapi.GraphQLResponse] {
	if request == nil || request.Query == "" {
		return ghapi.EmptyInputResult[ghapi.GraphQLResponse]()
	}

	resp, err := c.transport.Post(ctx, constants.APIPathGraphQL, request)

	return classify[ghapi.GraphQLResponse](resp, err, ghapi.MessageNotFound)
}
