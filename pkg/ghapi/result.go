package ghapi

import (
	"encoding/json"
	"fmt"
)

// Result is the uniform envelope every API call returns. It is immutable once
// constructed; a payload is present only for successful calls that return data.
type Result[T any] struct {
	status     Status
	message    string
	payload    T
	hasPayload bool
	err        error
}

// NewResult builds a result without payload.
func NewResult[T any](status Status, message string) *Result[T] {
	return &Result[T]{status: status, message: message}
}

// SuccessResult builds a successful result carrying payload.
func SuccessResult[T any](message string, payload T) *Result[T] {
	return &Result[T]{
		status:     StatusSuccess,
		message:    message,
		payload:    payload,
		hasPayload: true,
	}
}

// EmptyInputResult builds the result returned when a required argument is missing.
func EmptyInputResult[T any]() *Result[T] {
	return NewResult[T](StatusEmptyInput, MessageEmptyInput)
}

// TransportErrorResult builds the result for a request that could not be performed.
// The cause is kept for diagnostics and is available through Err.
func TransportErrorResult[T any](err error) *Result[T] {
	return &Result[T]{
		status:  StatusUnknownError,
		message: MessageUnknownError,
		err:     err,
	}
}

// Status returns the outcome category.
func (r *Result[T]) Status() Status {
	return r.status
}

// Message returns the human readable message.
func (r *Result[T]) Message() string {
	return r.message
}

// Payload returns the decoded payload and whether it is present.
func (r *Result[T]) Payload() (T, bool) {
	return r.payload, r.hasPayload
}

// HasPayload reports whether a payload is present.
func (r *Result[T]) HasPayload() bool {
	return r.hasPayload
}

// Err returns the transport failure behind an UnknownError result, if any.
func (r *Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the status is StatusSuccess.
func (r *Result[T]) IsSuccess() bool {
	return r.status == StatusSuccess
}

// String implements fmt.Stringer.
func (r *Result[T]) String() string {
	return fmt.Sprintf("%s: %s", r.status, r.message)
}

type resultProjection struct {
	Status  Status `json:"status"            yaml:"status"`
	Message string `json:"message"           yaml:"message"`
	Payload any    `json:"payload,omitempty" yaml:"payload,omitempty"`
}

func (r *Result[T]) projection() resultProjection {
	projection := resultProjection{
		Status:  r.status,
		Message: r.message,
	}

	if r.hasPayload {
		projection.Payload = r.payload
	}

	return projection
}

// MarshalJSON renders {"status", "message", "payload"} with payload omitted when absent.
func (r *Result[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(r.projection())
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}

	return data, nil
}

// MarshalYAML implements yaml.Marshaler with the same projection as MarshalJSON.
func (r *Result[T]) MarshalYAML() (interface{}, error) {
	return r.projection(), nil
}
