package input

import (
	"context"

	"predictive-keyboard/internal/domain"
)

// PredictionService interface - Input port (use case)
// Defines what the application can do with partially typed text.
// Both operations always return a result with a non-nil (possibly empty) list;
// a returned error means an internal fault, never a model failure.
type PredictionService interface {
	// PredictChar predicts the next characters for the word being typed
	PredictChar(ctx context.Context, text string) (*domain.PredictionResult, error)

	// PredictWord ranks the next word among the caller's allow-list
	PredictWord(ctx context.Context, text string, words []string) (*domain.PredictionResult, error)
}
