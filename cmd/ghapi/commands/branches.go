package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// NewBranchesCommand creates the branches command group.
func NewBranchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branches",
		Aliases: []string{"branch"},
		Short:   "Show repository branches",
		Long:    "List the branches of a repository",
	}

	cmd.AddCommand(newBranchesListCommand())

	return cmd
}

func newBranchesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list OWNER REPO",
		Short: "List branches",
		Long:  "List all branches of a repository with their head commit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Branches().List(cmd.Context(), args[0], args[1])

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, branchListView)
		},
	}
}

var branchListView = tableView[[]ghapi.Branch]{
	header: []string{"Name", "Commit", "Protected"},
	rows: func(branches []ghapi.Branch) [][]string {
		rows := make([][]string, 0, len(branches))

		for _, branch := range branches {
			rows = append(rows, []string{
				branch.Name,
				shortSHA(branch.Commit.SHA),
				strconv.FormatBool(branch.Protected),
			})
		}

		return rows
	},
}
