// Package ghapi provides types, interfaces, and helpers for working with the
// GitHub REST v3 API.
//
// # Overview
//
// The ghapi package defines the domain types (User, Repository, Branch,
// Commit) and the interfaces for resource-oriented clients (UsersClient,
// RepositoriesClient, BranchesClient, CommitsClient, GraphQLClient). A
// concrete implementation is provided by the ghclient package, which wires
// configuration, transport, and authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "fmt"
//	  "log"
//
//	  "github.com/timmik994/GitHubApiLib/pkg/ghapi"
//	  "github.com/timmik994/GitHubApiLib/pkg/ghclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ghclient.New(&ghapi.Config{AccessToken: "ghp_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  result := cli.Repositories().Get(ctx, "octocat", "Hello-World")
//	  if repo, ok := result.Payload(); ok {
//	    fmt.Println(repo.FullName)
//	  }
//	}
//
// # Results
//
// Resource clients never return Go errors. Every call yields a *Result whose
// Status is one of StatusSuccess, StatusUnauthorized, StatusNotFound,
// StatusMalformedPayload, StatusUnknownError, or StatusEmptyInput, together
// with a human readable message and, for successful reads, a payload. The
// mapping from HTTP responses is done by Classify:
//
//	401 -> StatusUnauthorized
//	404 -> StatusNotFound (message names what is missing)
//	201 -> StatusSuccess without payload
//	200 -> StatusSuccess with payload, or StatusMalformedPayload
//	else -> StatusUnknownError
//
// When a request cannot be sent at all the result is StatusUnknownError and
// Err returns the cause.
//
// # Current user cache
//
// UsersClient.Current accepts a *CurrentUserCache. Once it holds a user,
// further calls return it with MessageDataAlreadyLoaded and send no request.
// The cache belongs to the caller; pass nil to always fetch.
//
// # Interceptors
//
// InterceptorChain runs request and response hooks around every call. The
// defaults tag requests with an X-Request-Id and, when a Logger is
// configured, log each request and response.
package ghapi
