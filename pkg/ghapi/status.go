package ghapi

import (
	"errors"
	"fmt"
)

// Status is the outcome category of a classified API call.
type Status int

const (
	// StatusSuccess means the call completed; the payload is present when the call returns data.
	StatusSuccess Status = iota
	// StatusUnauthorized means the upstream rejected the access token.
	StatusUnauthorized
	// StatusNotFound means the requested resource does not exist.
	StatusNotFound
	// StatusMalformedPayload means a 200 response body could not be decoded into the requested shape.
	StatusMalformedPayload
	// StatusUnknownError covers every status code that is not modeled explicitly.
	StatusUnknownError
	// StatusEmptyInput means a required argument was empty and no request was sent.
	StatusEmptyInput
)

// ErrUnknownStatus is returned when text does not name a Status.
var ErrUnknownStatus = errors.New("unknown status")

var statusNames = map[Status]string{
	StatusSuccess:          "Success",
	StatusUnauthorized:     "Unauthorized",
	StatusNotFound:         "NotFound",
	StatusMalformedPayload: "MalformedPayload",
	StatusUnknownError:     "UnknownError",
	StatusEmptyInput:       "EmptyInput",
}

// String returns the enum name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownStatus, string(text))
}
