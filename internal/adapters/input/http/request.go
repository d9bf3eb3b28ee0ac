package http

type (
	// PredictCharRequest struct - HTTP request DTO for character prediction
	PredictCharRequest struct {
		Text *string `json:"text" validate:"required,max=4096"`
	}

	// PredictWordRequest struct - HTTP request DTO for word prediction
	PredictWordRequest struct {
		Text     *string  `json:"text" validate:"required,max=4096"`
		WordList []string `json:"word_list" validate:"required,max=200,dive,max=64"`
	}

	// QueryPredictionLogRequest struct - HTTP query request DTO
	QueryPredictionLogRequest struct {
		Mode    *string `json:"mode" validate:"omitempty,oneof=char word" form:"mode" query:"mode"`
		Outcome *string `json:"outcome" validate:"omitempty,oneof=ok skipped no_prediction malformed_response timeout unauthorized invalid_request unavailable" form:"outcome" query:"outcome"`

		Limit   *int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=1000" form:"limit" query:"limit"`
		Page    *int    `json:"page,omitempty" validate:"omitempty,gte=1" form:"page" query:"page"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}
)
