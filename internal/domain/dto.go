package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// QueryPredictionLogRequest struct - Domain query request DTO
	QueryPredictionLogRequest struct {
		Mode    *string
		Outcome *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// PredictionLogResponse struct - Domain response DTO
	PredictionLogResponse struct {
		ID            *uuid.UUID `json:"id,omitempty"`
		Mode          string     `json:"mode"`
		Provider      string     `json:"provider,omitempty"`
		Model         string     `json:"model,omitempty"`
		Outcome       string     `json:"outcome"`
		InputLength   int        `json:"input_length"`
		AllowListSize int        `json:"allow_list_size"`
		ResultCount   int        `json:"result_count"`
		LatencyMs     int64      `json:"latency_ms"`
		CreatedAt     *time.Time `json:"created_at,omitempty"`
	}

	// PredictionLogListResponse struct - Domain list response DTO
	PredictionLogListResponse struct {
		Logs        []PredictionLogResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}
)

// ToResponse converts the entity to its response DTO
func (l *PredictionLog) ToResponse() PredictionLogResponse {
	return PredictionLogResponse{
		ID:            l.ID,
		Mode:          string(l.Mode),
		Provider:      l.Provider,
		Model:         l.Model,
		Outcome:       string(l.Outcome),
		InputLength:   l.InputLength,
		AllowListSize: l.AllowListSize,
		ResultCount:   l.ResultCount,
		LatencyMs:     l.LatencyMs,
		CreatedAt:     l.CreatedAt,
	}
}
