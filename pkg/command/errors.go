package command

import "errors"

// Static errors for err113 compliance.
var (
	// ErrMissingResourceOrAction is returned when a line has fewer than two tokens.
	ErrMissingResourceOrAction = errors.New("command requires a resource and an action")
)
