package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// NewCommitsCommand creates the commits command group.
func NewCommitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "commits",
		Aliases: []string{"commit"},
		Short:   "Show commits",
		Long:    "List the commits of a repository or branch and show single commits",
	}

	cmd.AddCommand(newCommitsListCommand())
	cmd.AddCommand(newCommitsGetCommand())

	return cmd
}

func newCommitsListCommand() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "list OWNER REPO",
		Short: "List commits",
		Long:  "List commits of the default branch, or of --branch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var result *ghapi.Result[[]ghapi.Commit]
			if branch != "" {
				result = client.Commits().ListForBranch(cmd.Context(), args[0], args[1], branch)
			} else {
				result = client.Commits().List(cmd.Context(), args[0], args[1])
			}

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, commitListView)
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "list commits of this branch")

	return cmd
}

func newCommitsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER REPO SHA",
		Short: "Get commit details",
		Long:  "Display a single commit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Commits().Get(cmd.Context(), args[0], args[1], args[2])

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, commitView)
		},
	}
}

var commitListView = tableView[[]ghapi.Commit]{
	header: []string{"SHA", "Author", "Date", "Message"},
	rows: func(commits []ghapi.Commit) [][]string {
		rows := make([][]string, 0, len(commits))

		for _, commit := range commits {
			rows = append(rows, []string{
				shortSHA(commit.SHA),
				commitAuthor(commit),
				formatTime(commit.Detail.Author.Date),
				truncate(firstLine(commit.Detail.Message), constants.DescriptionTruncationLimit),
			})
		}

		return rows
	},
}

var commitView = detailView(func(commit ghapi.Commit) []field {
	parents := make([]string, 0, len(commit.Parents))
	for _, parent := range commit.Parents {
		parents = append(parents, shortSHA(parent.SHA))
	}

	return []field{
		{"sha", commit.SHA},
		{"author", commitAuthor(commit)},
		{"committer", commit.Detail.Committer.Name},
		{"date", formatTime(commit.Detail.Author.Date)},
		{"message", firstLine(commit.Detail.Message)},
		{"parents", strings.Join(parents, ", ")},
		{"comment_count", strconv.Itoa(commit.Detail.CommentCount)},
		{"html_url", commit.HTMLURL},
	}
})

// commitAuthor prefers the account login and falls back to the git author name.
func commitAuthor(commit ghapi.Commit) string {
	if login := loginOf(commit.Author); login != "" {
		return login
	}

	return commit.Detail.Author.Name
}
