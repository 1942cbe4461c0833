package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// NewReposCommand creates the repos command group.
func NewReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Aliases: []string{"repo"},
		Short:   "Manage repositories",
		Long:    "List, show and create repositories",
	}

	cmd.AddCommand(newReposListCommand())
	cmd.AddCommand(newReposGetCommand())
	cmd.AddCommand(newReposCreateCommand())

	return cmd
}

func newReposListCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long:  "List repositories of the authenticated user, or the public repositories of --user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var result *ghapi.Result[[]ghapi.Repository]
			if user != "" {
				result = client.Repositories().ListForUser(cmd.Context(), user)
			} else {
				result = client.Repositories().ListForCurrentUser(cmd.Context())
			}

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, repositoryListView)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "list the public repositories of this user")

	return cmd
}

func newReposGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER NAME",
		Short: "Get repository details",
		Long:  "Display detailed information about a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Repositories().Get(cmd.Context(), args[0], args[1])

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, repositoryView)
		},
	}
}

func newReposCreateCommand() *cobra.Command {
	var (
		description string
		homepage    string
		private     bool
		autoInit    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a repository",
		Long:  "Create a repository owned by the authenticated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Repositories().Create(cmd.Context(), &ghapi.RepositoryCreateRequest{
				Name:        args[0],
				Description: description,
				Homepage:    homepage,
				Private:     private,
				AutoInit:    autoInit,
			})

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, repositoryView)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "repository description")
	cmd.Flags().StringVar(&homepage, "homepage", "", "repository homepage URL")
	cmd.Flags().BoolVarP(&private, "private", "p", false, "create a private repository")
	cmd.Flags().BoolVar(&autoInit, "auto-init", false, "create an initial commit with an empty README")

	return cmd
}

var repositoryListView = tableView[[]ghapi.Repository]{
	header: []string{"Name", "Owner", "Private", "Language", "Stars", "Description"},
	rows: func(repositories []ghapi.Repository) [][]string {
		rows := make([][]string, 0, len(repositories))

		for _, repository := range repositories {
			rows = append(rows, []string{
				repository.Name,
				repository.OwnerLogin(),
				strconv.FormatBool(repository.Private),
				valueOrNA(repository.Language),
				strconv.Itoa(repository.StargazersCount),
				truncate(repository.Description, constants.DescriptionTruncationLimit),
			})
		}

		return rows
	},
}

var repositoryView = detailView(func(repository ghapi.Repository) []field {
	return []field{
		{"full_name", repository.FullName},
		{"description", repository.Description},
		{"private", strconv.FormatBool(repository.Private)},
		{"fork", strconv.FormatBool(repository.Fork)},
		{"default_branch", repository.DefaultBranch},
		{"language", repository.Language},
		{"stargazers_count", strconv.Itoa(repository.StargazersCount)},
		{"forks_count", strconv.Itoa(repository.ForksCount)},
		{"open_issues_count", strconv.Itoa(repository.OpenIssuesCount)},
		{"html_url", repository.HTMLURL},
		{"pushed_at", formatTime(repository.PushedAt)},
	}
})
