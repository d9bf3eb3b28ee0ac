package application

import (
	"fmt"

	"predictive-keyboard/internal/domain"
	"predictive-keyboard/internal/ports/output"
)

// sortableColumns are the prediction log columns a caller may order by
var sortableColumns = map[string]bool{
	"created_at":   true,
	"latency_ms":   true,
	"result_count": true,
	"input_length": true,
}

// PredictionLogService struct - Application service for prediction diagnostics
type PredictionLogService struct {
	repo output.PredictionLogRepository
}

// NewPredictionLogService func - Creates new prediction log service
func NewPredictionLogService(repo output.PredictionLogRepository) *PredictionLogService {
	return &PredictionLogService{
		repo: repo,
	}
}

// GetPredictionLogs func - Use case: Get prediction logs with pagination and filtering
func (s *PredictionLogService) GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
	var (
		page    int
		perPage int
		offset  int
	)
	if condition.Page != nil && *condition.Page > 0 {
		page = *condition.Page
	} else {
		page = 1
	}
	condition.Page = &page
	if condition.Limit != nil && *condition.Limit > 0 {
		perPage = *condition.Limit
	} else {
		perPage = 100
	}
	condition.Limit = &perPage
	offset = (page - 1) * perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: offset,
	}

	orderBy := "created_at"
	if condition.OrderBy != nil && *condition.OrderBy != "" {
		if !sortableColumns[*condition.OrderBy] {
			return nil, fmt.Errorf("%w: cannot order by %q", domain.ErrInvalidQuery, *condition.OrderBy)
		}
		orderBy = *condition.OrderBy
	}
	// newest first unless asked otherwise
	asc := false
	if condition.Asc != nil {
		asc = *condition.Asc
	}
	condition.SortMethod = &domain.SortMethod{
		Asc:     asc,
		OrderBy: orderBy,
	}
	return s.repo.GetPredictionLogs(condition)
}
