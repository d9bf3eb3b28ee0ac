package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"predictive-keyboard/internal/domain"
	"predictive-keyboard/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// logWriteTimeout bounds the asynchronous diagnostics write
const logWriteTimeout = 5 * time.Second

// ModeSettings struct - How one prediction mode calls its remote model
type ModeSettings struct {
	Client      output.CompletionClient
	Model       string
	MaxTokens   int
	Temperature *float64
}

// PredictionServiceConfig struct
type PredictionServiceConfig struct {
	Char    ModeSettings
	Word    ModeSettings
	Timeout time.Duration
}

// PredictionService struct - Application service implementing the prediction use cases
type PredictionService struct {
	char      ModeSettings
	word      ModeSettings
	timeout   time.Duration
	prompts   output.PromptBuilder
	sanitizer *domain.Sanitizer
	logs      output.PredictionLogRepository

	pending sync.WaitGroup
}

// NewPredictionService func - Creates new prediction service; logs may be nil
func NewPredictionService(config PredictionServiceConfig, prompts output.PromptBuilder, sanitizer *domain.Sanitizer, logs output.PredictionLogRepository) (*PredictionService, error) {
	if config.Char.Client == nil || config.Word.Client == nil {
		return nil, errors.New("prediction service needs a completion client for both modes")
	}
	if prompts == nil || sanitizer == nil {
		return nil, errors.New("prediction service needs a prompt builder and a sanitizer")
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	return &PredictionService{
		char:      config.Char,
		word:      config.Word,
		timeout:   config.Timeout,
		prompts:   prompts,
		sanitizer: sanitizer,
		logs:      logs,
	}, nil
}

// PredictChar func - Use case: predict the next characters of the word being typed
func (s *PredictionService) PredictChar(ctx context.Context, text string) (*domain.PredictionResult, error) {
	result := &domain.PredictionResult{
		Mode:        domain.PredictionModeChar,
		Predictions: domain.EmptyPredictions(),
		Outcome:     domain.OutcomeSkipped,
		Provider:    s.char.Client.Provider(),
	}

	if domain.IsBlank(text) || domain.IsWordFinished(text) {
		return result, nil
	}

	prompt, err := s.prompts.CharPrompt(text)
	if err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to build char prompt: %w", err)
	}

	raw := s.complete(ctx, s.char, prompt, result)
	if result.Outcome == domain.OutcomeOK {
		result.Predictions, result.Outcome = s.sanitizer.SanitizeChars(raw)
	}

	s.report(result, len(text), 0)
	return result, nil
}

// PredictWord func - Use case: rank the next word among the caller's allow-list
func (s *PredictionService) PredictWord(ctx context.Context, text string, words []string) (*domain.PredictionResult, error) {
	result := &domain.PredictionResult{
		Mode:        domain.PredictionModeWord,
		Predictions: domain.EmptyPredictions(),
		Outcome:     domain.OutcomeSkipped,
		Provider:    s.word.Client.Provider(),
	}

	allow := domain.NewWordAllowList(words)
	if domain.IsBlank(text) || allow.Len() == 0 {
		return result, nil
	}

	prompt, err := s.prompts.WordPrompt(text, allow.Words())
	if err != nil {
		logrus.Errorln(err)
		return nil, fmt.Errorf("failed to build word prompt: %w", err)
	}

	raw := s.complete(ctx, s.word, prompt, result)
	if result.Outcome == domain.OutcomeOK {
		result.Predictions, result.Outcome = s.sanitizer.SanitizeWords(raw, allow)
	}

	s.report(result, len(text), allow.Len())
	return result, nil
}

// complete performs the single remote call under the request timeout.
// On failure the result keeps its empty list and gets the classified outcome.
func (s *PredictionService) complete(ctx context.Context, mode ModeSettings, prompt domain.Prompt, result *domain.PredictionResult) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	request := domain.ChatCompletionRequest{
		Messages:    prompt.Messages(),
		MaxTokens:   mode.MaxTokens,
		Temperature: mode.Temperature,
	}
	if mode.Model != "" {
		request.Model = &mode.Model
	}

	start := time.Now()
	response, err := mode.Client.ChatCompletion(ctx, request)
	result.Latency = time.Since(start)

	if err != nil {
		result.Outcome = domain.ClassifyCompletionError(err)
		result.Err = err
		return ""
	}

	result.Model = response.Model
	result.Outcome = domain.OutcomeOK
	return response.Content
}

// report logs the timing of a remote call and stores a diagnostics record in the background
func (s *PredictionService) report(result *domain.PredictionResult, inputLength, allowListSize int) {
	entry := logrus.WithFields(logrus.Fields{
		"mode":       result.Mode,
		"provider":   result.Provider,
		"model":      result.Model,
		"outcome":    result.Outcome,
		"results":    len(result.Predictions),
		"latency_ms": result.Latency.Milliseconds(),
	})
	if result.Err != nil {
		entry.WithError(result.Err).Warn("Prediction degraded to empty list")
	} else {
		entry.Info("Prediction completed")
	}

	if s.logs == nil {
		return
	}

	record := domain.NewPredictionLog(result, inputLength, allowListSize)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		// detached from the request so a finished response does not cancel the write
		ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
		defer cancel()
		if err := s.logs.CreatePredictionLog(ctx, record); err != nil {
			logrus.Errorf("Failed to store prediction log: %v", err)
		}
	}()
}

// Wait blocks until background diagnostics writes have finished
func (s *PredictionService) Wait() {
	s.pending.Wait()
}
