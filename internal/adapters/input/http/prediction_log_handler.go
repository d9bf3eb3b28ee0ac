package http

import (
	"errors"

	"predictive-keyboard/internal/domain"
	"predictive-keyboard/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GetPredictionLogs godoc
// @Summary List prediction logs
// @Description Diagnostics of recent predictions. The typed text is never stored.
// @Tags PREDICTION LOG
// @Produce json
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "created_at, latency_ms, result_count or input_length"
// @param asc query bool false "asc"
// @param mode query string false "char or word"
// @param outcome query string false "outcome"
// @Success 200 {object} ResponseBody{data=[]PredictionLogResponse}
// @Failure 400 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /v1/api/prediction-logs [get]
func (hdl *HTTPHandler) GetPredictionLogs(c *fiber.Ctx) error {
	condition := QueryPredictionLogRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(BadRequest, validator.Messages(err)...))
	}

	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryPredictionLogRequest{
		Mode:    condition.Mode,
		Outcome: condition.Outcome,
		Limit:   condition.Limit,
		Page:    condition.Page,
		OrderBy: condition.OrderBy,
		Asc:     condition.Asc,
	}
	result, err := hdl.logs.GetPredictionLogs(domainCondition)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody(BadRequest, err.Error()))
		}
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]PredictionLogResponse, 0, len(result.Logs))
	for _, l := range result.Logs {
		data = append(data, PredictionLogResponse{
			ID:            l.ID,
			Mode:          l.Mode,
			Provider:      l.Provider,
			Model:         l.Model,
			Outcome:       l.Outcome,
			InputLength:   l.InputLength,
			AllowListSize: l.AllowListSize,
			ResultCount:   l.ResultCount,
			LatencyMs:     l.LatencyMs,
			CreatedAt:     l.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}
