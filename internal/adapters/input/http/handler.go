package http

import (
	"predictive-keyboard/internal/ports/input"
	"predictive-keyboard/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	predictions input.PredictionService
	logs        input.PredictionLogService
	ping        func() error
	validator   validator.Validator
}

// New func - Creates new HTTP handler; ping may be nil when no database is used
func New(predictions input.PredictionService, logs input.PredictionLogService, ping func() error) *HTTPHandler {
	return &HTTPHandler{
		predictions: predictions,
		logs:        logs,
		ping:        ping,
		validator:   validator.New(),
	}
}

// Register func - Mounts the handler routes
func (hdl *HTTPHandler) Register(router fiber.Router) {
	router.Get("/health", hdl.HealthCheck)
	router.Post("/predict-char", hdl.PredictChar)
	router.Post("/predict-word", hdl.PredictWord)

	v1 := router.Group("/v1/api")
	v1.Get("/prediction-logs", hdl.GetPredictionLogs)
}

// HealthCheck func
// @Summary Health check
// @Tags HEALTH
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.ping != nil {
		if err := hdl.ping(); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
