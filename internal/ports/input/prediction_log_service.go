package input

import "predictive-keyboard/internal/domain"

// PredictionLogService interface - Input port (use case)
type PredictionLogService interface {
	GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error)
}
