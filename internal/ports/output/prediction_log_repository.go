package output

import (
	"context"

	"predictive-keyboard/internal/domain"
)

// PredictionLogRepository interface - Output port
// Stores diagnostics about finished predictions. Implementations must be safe for concurrent use.
type PredictionLogRepository interface {
	CreatePredictionLog(ctx context.Context, entry *domain.PredictionLog) error
	GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error)
}
