// Package command parses single-line commands of the form
//
//	resource action [--flag [value]]...
//
// into an Invocation. Tokens are split on whitespace; quoting is not
// supported, so every value is a single token.
package command

import (
	"fmt"
	"sort"
	"strings"
)

const (
	flagPrefix     = '-'
	maxFlagDashes  = 2
	longFlagPrefix = "--"
	positionalArgs = 2
)

// Invocation is the structured form of a command line.
type Invocation struct {
	ResourceKind string
	Action       string
	// Parameters maps flag names (without dashes) to values. A flag given
	// without a value is present with an empty string.
	Parameters map[string]string
}

// Parse splits line into an Invocation.
//
// Tokens after the action are scanned left to right. A flag takes the next
// token as its value unless that token is itself a flag or there is none.
// Tokens that are neither flags nor flag values are ignored. When a flag
// repeats, the last occurrence wins.
func Parse(line string) (*Invocation, error) {
	tokens := strings.Fields(line)
	if len(tokens) < positionalArgs {
		return nil, fmt.Errorf("%w: got %d token(s)", ErrMissingResourceOrAction, len(tokens))
	}

	invocation := &Invocation{
		ResourceKind: tokens[0],
		Action:       tokens[1],
		Parameters:   make(map[string]string),
	}

	for i := positionalArgs; i < len(tokens); i++ {
		if !IsFlag(tokens[i]) {
			continue
		}

		key := strings.TrimLeft(tokens[i], string(flagPrefix))
		value := ""

		if i+1 < len(tokens) && !IsFlag(tokens[i+1]) {
			value = tokens[i+1]
			i++
		}

		invocation.Parameters[key] = value
	}

	return invocation, nil
}

// IsFlag reports whether token is one or two dashes followed by a name that
// does not itself start with a dash.
func IsFlag(token string) bool {
	dashes := 0
	for dashes < len(token) && dashes < maxFlagDashes && token[dashes] == flagPrefix {
		dashes++
	}

	if dashes == 0 || dashes == len(token) {
		return false
	}

	return token[dashes] != flagPrefix
}

// Has reports whether the flag key was given, with or without a value.
func (i *Invocation) Has(key string) bool {
	_, ok := i.Parameters[key]

	return ok
}

// Get returns the value of key, or "" when it is absent or has no value.
func (i *Invocation) Get(key string) string {
	return i.Parameters[key]
}

// Lookup returns the value of the first of keys that is present. It lets
// callers accept a short and a long spelling of the same flag.
func (i *Invocation) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := i.Parameters[key]; ok {
			return value, true
		}
	}

	return "", false
}

// String renders the invocation back to command syntax with flags sorted by
// name. Flags without a value are written bare.
func (i *Invocation) String() string {
	var builder strings.Builder

	builder.WriteString(i.ResourceKind)
	builder.WriteByte(' ')
	builder.WriteString(i.Action)

	keys := make([]string, 0, len(i.Parameters))
	for key := range i.Parameters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(longFlagPrefix)
		builder.WriteString(key)

		if value := i.Parameters[key]; value != "" {
			builder.WriteByte(' ')
			builder.WriteString(value)
		}
	}

	return builder.String()
}
