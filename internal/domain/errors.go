package domain

import (
	"context"
	"errors"
)

// Completion error types

var (
	// ErrCompletionUnavailable indicates the remote model could not be reached or failed server side
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrCompletionTimeout indicates a request to the remote model timed out
	ErrCompletionTimeout = errors.New("completion request timeout")

	// ErrUnauthorized indicates the remote model rejected the credentials (401/403)
	ErrUnauthorized = errors.New("completion request unauthorized")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyCompletion indicates the remote model answered without any text
	ErrEmptyCompletion = errors.New("empty completion")

	// ErrMalformedCompletion indicates the model text does not follow the pair grammar
	ErrMalformedCompletion = errors.New("malformed completion")
)

// ClassifyCompletionError maps an error from a completion client to an Outcome.
// A nil error is OutcomeOK.
func ClassifyCompletionError(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrCompletionTimeout), errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(err, ErrUnauthorized):
		return OutcomeUnauthorized
	case errors.Is(err, ErrInvalidRequest):
		return OutcomeInvalidRequest
	case errors.Is(err, ErrEmptyCompletion), errors.Is(err, ErrMalformedCompletion):
		return OutcomeMalformed
	default:
		return OutcomeUnavailable
	}
}

// Storage error types

var (
	// ErrDatabaseNotConfigured indicates a repository was built without a connection
	ErrDatabaseNotConfigured = errors.New("database not configured")

	// ErrInvalidQuery indicates a log query with an unsupported filter or sort
	ErrInvalidQuery = errors.New("invalid query")
)
