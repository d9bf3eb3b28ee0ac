package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Service Unavailable"}}
)

// OutcomeHeader carries the prediction outcome next to the bare list body
const OutcomeHeader = "X-Prediction-Outcome"

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// CharPrediction struct - One character candidate
	CharPrediction struct {
		Character  string  `json:"character"`
		Confidence float64 `json:"confidence"`
	}

	// WordPrediction struct - One word candidate
	WordPrediction struct {
		Word       string  `json:"word"`
		Confidence float64 `json:"confidence"`
	}

	// PredictionLogResponse struct - HTTP response DTO for a single prediction log
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
)

// errorBody builds an envelope with extra messages
func errorBody(status Status, messages ...string) ResponseBody {
	if len(messages) > 0 {
		status.Message = messages
	}
	return ResponseBody{Status: status}
}
