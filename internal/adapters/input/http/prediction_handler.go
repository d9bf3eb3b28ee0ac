package http

import (
	"predictive-keyboard/internal/domain"
	"predictive-keyboard/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PredictChar godoc
// @Summary Predict next characters
// @Description Returns up to 5 next-character candidates, most likely first. An empty list means no prediction.
// @Tags PREDICTION
// @Accept application/json
// @Produce json
// @param PredictChar body PredictCharRequest true "PredictChar"
// @Success 200 {array} CharPrediction
// @Header 200 {string} X-Prediction-Outcome "ok, skipped, no_prediction, malformed_response, timeout, unauthorized, invalid_request or unavailable"
// @Failure 400 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /predict-char [post]
func (hdl *HTTPHandler) PredictChar(c *fiber.Ctx) error {
	var request PredictCharRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(BadRequest, validator.Messages(err)...))
	}

	result, err := hdl.predictions.PredictChar(c.UserContext(), *request.Text)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]CharPrediction, 0, len(result.Predictions))
	for _, p := range result.Predictions {
		data = append(data, CharPrediction{Character: p.Symbol, Confidence: p.Confidence})
	}
	return hdl.sendPredictions(c, result, data)
}

// PredictWord godoc
// @Summary Predict next word
// @Description Returns up to 3 words from word_list, most likely first. An empty list means no prediction.
// @Tags PREDICTION
// @Accept application/json
// @Produce json
// @param PredictWord body PredictWordRequest true "PredictWord"
// @Success 200 {array} WordPrediction
// @Header 200 {string} X-Prediction-Outcome "ok, skipped, no_prediction, malformed_response, timeout, unauthorized, invalid_request or unavailable"
// @Failure 400 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /predict-word [post]
func (hdl *HTTPHandler) PredictWord(c *fiber.Ctx) error {
	var request PredictWordRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(BadRequest, validator.Messages(err)...))
	}

	result, err := hdl.predictions.PredictWord(c.UserContext(), *request.Text, request.WordList)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]WordPrediction, 0, len(result.Predictions))
	for _, p := range result.Predictions {
		data = append(data, WordPrediction{Word: p.Symbol, Confidence: p.Confidence})
	}
	return hdl.sendPredictions(c, result, data)
}

func (hdl *HTTPHandler) sendPredictions(c *fiber.Ctx, result *domain.PredictionResult, data interface{}) error {
	c.Set(OutcomeHeader, result.Outcome.String())
	return c.Status(fiber.StatusOK).JSON(data)
}
