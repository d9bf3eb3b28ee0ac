package cerebras

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"predictive-keyboard/configs"
	"predictive-keyboard/internal/domain"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.cerebras.ai/v1"

// CerebrasClientAdapter struct - Output adapter for Cerebras' OpenAI-compatible chat API
type CerebrasClientAdapter struct {
	client      *openai.Client
	baseURL     string
	configModel string
	timeout     time.Duration
	maxRetries  int

	// Model caching
	cachedModel string
	modelMu     sync.RWMutex
}

// NewCerebrasClientAdapter func - Creates new Cerebras client adapter
func NewCerebrasClientAdapter(config configs.Provider) (*CerebrasClientAdapter, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		logrus.Warn("Cerebras api key is not set, requests will be rejected as unauthorized")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := config.TimeoutDuration()
	if config.Timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxRetries := config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &CerebrasClientAdapter{
		client:      openai.NewClientWithConfig(clientConfig),
		baseURL:     baseURL,
		configModel: config.Model,
		timeout:     timeout,
		maxRetries:  maxRetries,
	}

	logrus.Infof("Cerebras client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// Retry configuration constants
const (
	initialDelay      = 200 * time.Millisecond
	maxDelay          = 2 * time.Second
	backoffMultiplier = 2
)

// Provider returns the provider name used in logs
func (a *CerebrasClientAdapter) Provider() string {
	return configs.ProviderCerebras
}

// retryWithBackoff runs operation once plus up to maxRetries retries on transient errors
func (a *CerebrasClientAdapter) retryWithBackoff(ctx context.Context, operation func() error) error {
	delay := initialDelay
	attempts := a.maxRetries + 1

	for attempt := 1; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		if attempt >= attempts || !isTransientError(err) {
			return err
		}

		logrus.Warnf("Cerebras request attempt %d/%d failed with error: %v, retrying in %v", attempt, attempts, err, delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = delay * backoffMultiplier
		if delay > maxDelay {
			delay = maxDelay
		}
	}
}

// isTransientError determines if an error is worth retrying
func isTransientError(err error) bool {
	if status := statusCode(err); status != 0 {
		return status == http.StatusTooManyRequests || status >= 500
	}

	// the caller's deadline is spent, a retry cannot succeed
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range []string{"connection refused", "connection reset", "eof"} {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}

// statusCode extracts the HTTP status of a go-openai error, 0 when there is none
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// mapError wraps a go-openai error into the matching domain error
func mapError(err error) error {
	status := statusCode(err)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d: %v", domain.ErrUnauthorized, status, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d: %v", domain.ErrCompletionUnavailable, status, err)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: status %d: %v", domain.ErrInvalidRequest, status, err)
	case status >= 500:
		return fmt.Errorf("%w: status %d: %v", domain.ErrCompletionUnavailable, status, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrCompletionTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrCompletionTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrCompletionUnavailable, err)
}

// ListModels queries the /models endpoint
func (a *CerebrasClientAdapter) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	var list openai.ModelsList
	err := a.retryWithBackoff(ctx, func() error {
		var err error
		list, err = a.client.ListModels(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", mapError(err))
	}

	models := make([]domain.ModelInfo, len(list.Models))
	for i, m := range list.Models {
		models[i] = domain.ModelInfo{
			ID:      m.ID,
			Object:  m.Object,
			OwnedBy: m.OwnedBy,
		}
	}

	logrus.Infof("Listed %d models from Cerebras", len(models))

	return models, nil
}

// getModel returns the model to use for requests, with caching
func (a *CerebrasClientAdapter) getModel(ctx context.Context) (string, error) {
	a.modelMu.RLock()
	if a.cachedModel != "" {
		model := a.cachedModel
		a.modelMu.RUnlock()
		return model, nil
	}
	a.modelMu.RUnlock()

	a.modelMu.Lock()
	defer a.modelMu.Unlock()

	// Double-check after acquiring write lock
	if a.cachedModel != "" {
		return a.cachedModel, nil
	}

	if a.configModel != "" {
		a.cachedModel = a.configModel
		logrus.Infof("Using configured Cerebras model: %s", a.cachedModel)
		return a.cachedModel, nil
	}

	models, err := a.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get models for selection: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no models available on Cerebras", domain.ErrCompletionUnavailable)
	}

	a.cachedModel = models[0].ID
	logrus.Infof("Selected first available model: %s", a.cachedModel)

	return a.cachedModel, nil
}

// ChatCompletion sends a non-streaming chat completion request
func (a *CerebrasClientAdapter) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	model, err := a.getModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	// Override model if specified in request
	if request.Model != nil && *request.Model != "" {
		model = *request.Model
	}

	req := openai.ChatCompletionRequest{
		Model:               model,
		Messages:            make([]openai.ChatCompletionMessage, len(request.Messages)),
		MaxCompletionTokens: request.MaxTokens,
	}
	for i, msg := range request.Messages {
		req.Messages[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	if request.Temperature != nil {
		req.Temperature = float32(*request.Temperature)
	}

	var resp openai.ChatCompletionResponse
	err = a.retryWithBackoff(ctx, func() error {
		var err error
		resp, err = a.client.CreateChatCompletion(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send chat completion request: %w", mapError(err))
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", domain.ErrEmptyCompletion)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: first choice has no content", domain.ErrEmptyCompletion)
	}

	response := &domain.ChatCompletionResponse{
		Content:          content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}

	logrus.Debugf("Cerebras chat completion successful, model: %s, tokens: %d", response.Model, response.TotalTokens)

	return response, nil
}
