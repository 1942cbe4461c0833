package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// ErrInvalidVariable is returned for a --var value that is not KEY=VALUE.
var ErrInvalidVariable = errors.New("invalid variable, expected KEY=VALUE")

// NewGraphQLCommand creates the graphql command.
func NewGraphQLCommand() *cobra.Command {
	var variables []string

	cmd := &cobra.Command{
		Use:   "graphql QUERY",
		Short: "Run a GraphQL query",
		Long:  "Post a query to the GraphQL endpoint and print the raw reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseVariables(variables)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result := client.GraphQL().Query(cmd.Context(), &ghapi.GraphQLRequest{
				Query:     args[0],
				Variables: parsed,
			})

			return outputResult(cmd.OutOrStdout(), viper.GetString("output"), result, graphQLView)
		},
	}

	cmd.Flags().StringArrayVar(&variables, "var", nil, "query variable as KEY=VALUE (repeatable)")

	return cmd
}

// parseVariables turns KEY=VALUE pairs into GraphQL variables. Values are
// sent as strings.
func parseVariables(pairs []string) (map[string]interface{}, error) {
	variables := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariable, pair)
		}

		variables[key] = value
	}

	return variables, nil
}

var graphQLView = tableView[ghapi.GraphQLResponse]{
	header: []string{"Field", "Value"},
	rows: func(response ghapi.GraphQLResponse) [][]string {
		rows := [][]string{{"Data", valueOrNA(string(response.Data))}}

		for _, gqlErr := range response.Errors {
			rows = append(rows, []string{"Error", gqlErr.Message})
		}

		return rows
	},
}
