package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"golang.org/x/term"
)

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec LINE",
		Short: "Run one command line",
		Long: `Run a single "<resource> <action> [--flag value]..." line, for example

  ghapi exec "repo get -u octocat -r hello-world"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			dispatcher := NewDispatcher(client, cmd.OutOrStdout(), viper.GetString("output"))

			return dispatcher.Dispatch(cmd.Context(), strings.Join(args, " "))
		},
	}
}

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell",
		Long: `Read "<resource> <action> [--flag value]..." lines from stdin and run
them one by one. Type "exit" or "quit" to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			dispatcher := NewDispatcher(client, cmd.OutOrStdout(), viper.GetString("output"))
			interactive := cmd.InOrStdin() == io.Reader(os.Stdin) && term.IsTerminal(int(os.Stdin.Fd()))

			return runShell(cmd.Context(), dispatcher, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), interactive)
		},
	}
}

// runShell dispatches every non-blank line read from in until EOF or an
// exit command. A failing line is reported on errOut and does not end the session.
func runShell(ctx context.Context, dispatcher *Dispatcher, in io.Reader, out, errOut io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)

	for {
		if prompt {
			_, _ = fmt.Fprint(out, constants.ShellPrompt)
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		err := dispatcher.Dispatch(ctx, line)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}

		if ctx.Err() != nil {
			return fmt.Errorf("shell interrupted: %w", ctx.Err())
		}
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}
