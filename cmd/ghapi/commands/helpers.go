package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olekukonko/tablewriter"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
	"gopkg.in/yaml.v3"
)

const jsonIndent = "  "

// Common static errors used throughout the commands package.
var (
	ErrRequestFailed = errors.New("request failed")
	ErrLoginFailed   = errors.New("login failed")
)

// tableView describes how a payload is laid out in table output.
type tableView[T any] struct {
	header []string
	rows   func(payload T) [][]string
}

// field is one row of a detail table.
type field struct {
	key   string
	value string
}

// detailView renders a single record as a Property/Value table.
func detailView[T any](fields func(payload T) []field) tableView[T] {
	return tableView[T]{
		header: []string{"Property", "Value"},
		rows: func(payload T) [][]string {
			entries := fields(payload)
			rows := make([][]string, 0, len(entries))

			for _, entry := range entries {
				rows = append(rows, []string{label(entry.key), valueOrNA(entry.value)})
			}

			return rows
		},
	}
}

// outputResult writes result in the requested format. JSON and YAML print the
// whole envelope; table output prints the payload, or the status and message
// when there is none. A result that is not a success is also returned as an
// error wrapping ErrRequestFailed.
func outputResult[T any](w io.Writer, format string, result *ghapi.Result[T], view tableView[T]) error {
	var err error

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", jsonIndent)

		err = encoder.Encode(result)
		if err != nil {
			return fmt.Errorf("failed to encode result as JSON: %w", err)
		}
	case constants.FormatYAML:
		err = yaml.NewEncoder(w).Encode(result)
		if err != nil {
			return fmt.Errorf("failed to encode result as YAML: %w", err)
		}
	default:
		err = renderResultTable(w, result, view)
		if err != nil {
			return err
		}
	}

	if !result.IsSuccess() {
		return resultError(result)
	}

	return nil
}

func renderResultTable[T any](w io.Writer, result *ghapi.Result[T], view tableView[T]) error {
	table := tablewriter.NewWriter(w)

	payload, ok := result.Payload()
	if ok && view.rows != nil {
		table.Header(toAnySlice(view.header)...)

		for _, row := range view.rows(payload) {
			_ = table.Append(row)
		}
	} else {
		table.Header("Status", "Message")
		_ = table.Append([]string{result.Status().String(), result.Message()})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func resultError[T any](result *ghapi.Result[T]) error {
	if cause := result.Err(); cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, result.Status(), cause)
	}

	return fmt.Errorf("%w: %s: %s", ErrRequestFailed, result.Status(), result.Message())
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

// label turns a snake_case key into a table label, e.g. "public_repos" into "Public Repos".
func label(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// truncate shortens text to limit runes, ending it with "...".
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	if limit <= len("...") {
		return string(runes[:limit])
	}

	return string(runes[:limit-len("...")]) + "..."
}

func shortSHA(sha string) string {
	if len(sha) <= constants.ShortSHALength {
		return sha
	}

	return sha[:constants.ShortSHALength]
}

// firstLine returns the subject line of a commit message.
func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}

	return strings.TrimSpace(text)
}

func loginOf(user *ghapi.BasicUser) string {
	if user == nil {
		return ""
	}

	return user.Login
}
