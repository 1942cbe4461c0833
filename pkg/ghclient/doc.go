// Package ghclient provides the entry point for constructing a GitHub API
// client that implements the ghapi.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the ghapi package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/timmik994/GitHubApiLib/pkg/ghapi"
//	  "github.com/timmik994/GitHubApiLib/pkg/ghclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Public data only, against https://api.github.com.
//	  cli, err := ghclient.New(&ghapi.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a personal access token:
//	  cli, err = ghclient.NewWithToken("", "ghp_...")
//	  if err != nil { log.Fatal(err) }
//
//	  cache := ghapi.NewCurrentUserCache()
//	  me := cli.Users().Current(ctx, cache)
//	  _ = me
//	}
//
// An empty endpoint selects the public API. Enterprise installations take
// their API root, for example "github.example.com/api/v3"; a missing scheme
// defaults to https.
package ghclient
