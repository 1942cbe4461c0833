package ghapi

import "fmt"

// Messages carried by result envelopes.
const (
	// MessageSuccess accompanies every successful call.
	MessageSuccess = "Operation completed successfully."

	// MessageDataAlreadyLoaded accompanies results served from the current user cache.
	MessageDataAlreadyLoaded = "Data already loaded from the server."

	// MessageUnauthorized accompanies 401 responses.
	MessageUnauthorized = "Invalid access token."

	// MessageUnknownError accompanies unmodeled status codes and transport failures.
	MessageUnknownError = "Operation ended with unknown error."

	// MessageEmptyInput accompanies calls rejected before sending because input was empty.
	MessageEmptyInput = "Passed data is null or empty."

	// MessageInvalidJSON prefixes the raw body of a response that failed to decode.
	MessageInvalidJSON = "JSON object from server has invalid format"

	// MessageNotFound is the generic not-found message.
	MessageNotFound = "Requested data not found."
)

const (
	userNotFoundTemplate           = "User %s not found."
	userOrRepositoryNotFoundTmpl   = "User %s or repository %s not found."
	userRepositoryBranchNotFoundTm = "User %s or repository %s or branch %s not found."
	invalidJSONTemplate            = "%s: %s"
)

// UserNotFoundMessage reports a missing user.
func UserNotFoundMessage(login string) string {
	return fmt.Sprintf(userNotFoundTemplate, login)
}

// RepositoryNotFoundMessage reports a missing user or repository.
func RepositoryNotFoundMessage(owner, repository string) string {
	return fmt.Sprintf(userOrRepositoryNotFoundTmpl, owner, repository)
}

// BranchNotFoundMessage reports a missing user, repository or branch.
func BranchNotFoundMessage(owner, repository, branch string) string {
	return fmt.Sprintf(userRepositoryBranchNotFoundTm, owner, repository, branch)
}

// InvalidJSONMessage embeds the raw body verbatim after the invalid JSON marker.
func InvalidJSONMessage(body string) string {
	return fmt.Sprintf(invalidJSONTemplate, MessageInvalidJSON, body)
}
