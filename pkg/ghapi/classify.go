package ghapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Classify turns a raw HTTP status code and body into a Result.
//
// 401 and 404 map to Unauthorized and NotFound (with notFoundMessage), 201 is a
// success without payload, and 200 decodes the body into T. A body that does
// not decode as T yields MalformedPayload with the raw text appended to the
// message. Any other status is UnknownError. Classify never fails: every
// outcome is a value. The body is only read for 200 responses.
func Classify[T any](statusCode int, body io.Reader, notFoundMessage string) *Result[T] {
	switch statusCode {
	case http.StatusUnauthorized:
		return NewResult[T](StatusUnauthorized, MessageUnauthorized)
	case http.StatusNotFound:
		return NewResult[T](StatusNotFound, notFoundMessage)
	case http.StatusCreated:
		return NewResult[T](StatusSuccess, MessageSuccess)
	case http.StatusOK:
		return decodePayload[T](body)
	default:
		return NewResult[T](StatusUnknownError, MessageUnknownError)
	}
}

func decodePayload[T any](body io.Reader) *Result[T] {
	text, err := readBody(body)
	if err != nil {
		return NewResult[T](StatusMalformedPayload, InvalidJSONMessage(text))
	}

	var payload T

	err = json.Unmarshal([]byte(text), &payload)
	if err != nil {
		return NewResult[T](StatusMalformedPayload, InvalidJSONMessage(text))
	}

	return SuccessResult(MessageSuccess, payload)
}

// readBody returns everything read so far even when the reader fails midway.
func readBody(body io.Reader) (string, error) {
	if body == nil {
		return "", nil
	}

	var builder strings.Builder

	_, err := io.Copy(&builder, body)

	return builder.String(), err
}
