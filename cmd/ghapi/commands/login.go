package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghclient"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long: `Verify an access token against the API and store it in the configuration.
The token is read from --token, or prompted for when stdin is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if apiEndpoint != "" {
				config.API = ghclient.NormalizeEndpoint(apiEndpoint)
			}

			if token == "" {
				var err error

				token, err = promptToken(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			client, err := createClientWithToken(config, token)
			if err != nil {
				return err
			}

			result := client.Users().Current(cmd.Context(), nil)
			if !result.IsSuccess() {
				return fmt.Errorf("%w: %s", ErrLoginFailed, result.Message())
			}

			user, _ := result.Payload()
			config.Token = token

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", ghclient.NormalizeEndpoint(config.API), user.Login)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "access token")

	return cmd
}

// promptToken reads a token from the terminal without echoing it.
func promptToken(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", constants.ErrTokenNotProvided
	}

	_, _ = fmt.Fprint(prompt, "Access token: ")

	raw, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(prompt)

	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", constants.ErrTokenNotProvided
	}

	return token, nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Long:  "Clear the access token from the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}
