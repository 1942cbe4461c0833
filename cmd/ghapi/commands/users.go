package commands

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Show users",
		Long:    "Show the authenticated user or any user by login",
	}

	cmd.AddCommand(newUsersCurrentCommand())
	cmd.AddCommand(newUsersGetCommand())

	return cmd
}

func newUsersCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the authenticated user",
		Long:  "Display the profile of the user the access token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Users().Current(cmd.Context(), nil)

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, userView)
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LOGIN",
		Short: "Get user details",
		Long:  "Display the public profile of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.Users().Get(cmd.Context(), args[0])

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, userView)
		},
	}
}

var userView = detailView(func(user ghapi.User) []field {
	return []field{
		{"login", user.Login},
		{"name", user.Name},
		{"company", user.Company},
		{"location", user.Location},
		{"email", user.Email},
		{"blog", user.Blog},
		{"public_repos", strconv.Itoa(user.PublicRepos)},
		{"followers", strconv.Itoa(user.Followers)},
		{"following", strconv.Itoa(user.Following)},
		{"created_at", formatTime(user.CreatedAt)},
	}
})

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}
