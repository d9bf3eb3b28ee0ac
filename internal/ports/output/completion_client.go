package output

import (
	"context"

	"predictive-keyboard/internal/domain"
)

// CompletionClient interface - Output port
// Defines what the application needs from a hosted chat model.
type CompletionClient interface {
	// ChatCompletion sends one non-streaming request and returns the text of the first choice.
	// Errors wrap the domain completion errors (ErrCompletionTimeout, ErrUnauthorized,
	// ErrInvalidRequest, ErrCompletionUnavailable, ErrEmptyCompletion).
	ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)

	// ListModels returns the models the provider advertises.
	// Used to pick a model when none is configured.
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)

	// Provider returns a short provider name for logs
	Provider() string
}
