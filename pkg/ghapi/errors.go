package ghapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is the error body the upstream API returns alongside non-2xx codes.
// It is used for diagnostics only; classification is driven by the status code.
type APIError struct {
	Message          string `json:"message"                     yaml:"message"`
	DocumentationURL string `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.DocumentationURL == "" {
		return e.Message
	}

	return fmt.Sprintf("%s (see %s)", e.Message, e.DocumentationURL)
}

// ParseAPIError parses an error body. Bodies without a message are reported as errors.
func ParseAPIError(data []byte) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal api error: %w", err)
	}

	if apiErr.Message == "" {
		return nil, ErrNoErrorMessage
	}

	return &apiErr, nil
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoErrorMessage      = errors.New("error body carries no message")
	ErrTransportRequired   = errors.New("transport is required")
)
