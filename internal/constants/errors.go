package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidOutput    = errors.New("invalid output format, use table, json or yaml")
	ErrTokenNotProvided = errors.New("no token provided and stdin is not a terminal")
	ErrInvalidRetryMax  = errors.New("retry_max must be a non-negative integer")
)

// Dispatcher errors.
var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrUnknownAction   = errors.New("unknown action")
)
