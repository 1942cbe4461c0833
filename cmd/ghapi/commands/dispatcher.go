package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/command"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// handler runs one resource action and prints its result.
type handler func(ctx context.Context, d *Dispatcher, inv *command.Invocation) error

// Dispatcher routes parsed command lines to the matching data service call.
// It keeps a current user cache for its whole lifetime, so repeated
// "user current" lines in a shell session are answered locally.
type Dispatcher struct {
	client   ghapi.Client
	cache    *ghapi.CurrentUserCache
	out      io.Writer
	format   string
	handlers map[string]map[string]handler
}

// NewDispatcher creates a dispatcher that writes results to out in format.
func NewDispatcher(client ghapi.Client, out io.Writer, format string) *Dispatcher {
	return &Dispatcher{
		client: client,
		cache:  ghapi.NewCurrentUserCache(),
		out:    out,
		format: format,
		handlers: map[string]map[string]handler{
			"user": {
				"current": handleUserCurrent,
				"get":     handleUserGet,
			},
			"repo": {
				"list":   handleRepoList,
				"get":    handleRepoGet,
				"create": handleRepoCreate,
			},
			"branch": {
				"list": handleBranchList,
			},
			"commit": {
				"list": handleCommitList,
				"get":  handleCommitGet,
			},
		},
	}
}

// Dispatch parses line and runs the handler for its resource and action.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) error {
	inv, err := command.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}

	actions, ok := d.handlers[inv.ResourceKind]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownResource, inv.ResourceKind)
	}

	run, ok := actions[inv.Action]
	if !ok {
		return fmt.Errorf("%w: %s %s", constants.ErrUnknownAction, inv.ResourceKind, inv.Action)
	}

	return run(ctx, d, inv)
}

func handleUserCurrent(ctx context.Context, d *Dispatcher, _ *command.Invocation) error {
	result := d.client.Users().Current(ctx, d.cache)

	return outputResult(d.out, d.format, result, userView)
}

func handleUserGet(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	login, _ := inv.Lookup("u", "user", "n", "name")
	result := d.client.Users().Get(ctx, login)

	return outputResult(d.out, d.format, result, userView)
}

func handleRepoList(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	var result *ghapi.Result[[]ghapi.Repository]

	if login, ok := inv.Lookup("u", "user"); ok {
		result = d.client.Repositories().ListForUser(ctx, login)
	} else {
		result = d.client.Repositories().ListForCurrentUser(ctx)
	}

	return outputResult(d.out, d.format, result, repositoryListView)
}

func handleRepoGet(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	owner, _ := inv.Lookup("u", "user")
	name, _ := inv.Lookup("r", "repo", "n", "name")
	result := d.client.Repositories().Get(ctx, owner, name)

	return outputResult(d.out, d.format, result, repositoryView)
}

func handleRepoCreate(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	name, _ := inv.Lookup("n", "name")
	description, _ := inv.Lookup("d", "description")

	result := d.client.Repositories().Create(ctx, &ghapi.RepositoryCreateRequest{
		Name:        name,
		Description: description,
		Private:     inv.Has("p") || inv.Has("private"),
	})

	return outputResult(d.out, d.format, result, repositoryView)
}

func handleBranchList(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	owner, _ := inv.Lookup("u", "user")
	repository, _ := inv.Lookup("r", "repo")
	result := d.client.Branches().List(ctx, owner, repository)

	return outputResult(d.out, d.format, result, branchListView)
}

func handleCommitList(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	owner, _ := inv.Lookup("u", "user")
	repository, _ := inv.Lookup("r", "repo")

	var result *ghapi.Result[[]ghapi.Commit]

	if branch, ok := inv.Lookup("b", "branch"); ok {
		result = d.client.Commits().ListForBranch(ctx, owner, repository, branch)
	} else {
		result = d.client.Commits().List(ctx, owner, repository)
	}

	return outputResult(d.out, d.format, result, commitListView)
}

func handleCommitGet(ctx context.Context, d *Dispatcher, inv *command.Invocation) error {
	owner, _ := inv.Lookup("u", "user")
	repository, _ := inv.Lookup("r", "repo")
	sha, _ := inv.Lookup("s", "sha")
	result := d.client.Commits().Get(ctx, owner, repository, sha)

	return outputResult(d.out, d.format, result, commitView)
}
