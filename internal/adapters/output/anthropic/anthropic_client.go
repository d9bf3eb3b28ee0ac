package anthropic

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

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
)

// AnthropicClientAdapter struct - Output adapter for the Anthropic Messages API
type AnthropicClientAdapter struct {
	client      anthropic.Client
	configModel string
	timeout     time.Duration

	// Model caching
	cachedModel string
	modelMu     sync.RWMutex
}

// NewAnthropicClientAdapter func - Creates new Anthropic client adapter
func NewAnthropicClientAdapter(config configs.Provider) (*AnthropicClientAdapter, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		logrus.Warn("Anthropic api key is not set, requests will be rejected as unauthorized")
	}

	timeout := config.TimeoutDuration()
	if config.Timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxRetries := config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(maxRetries),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	adapter := &AnthropicClientAdapter{
		client:      anthropic.NewClient(opts...),
		configModel: config.Model,
		timeout:     timeout,
	}

	logrus.Infof("Anthropic client adapter initialized, timeout: %v, retries: %d", timeout, maxRetries)

	return adapter, nil
}

// Provider returns the provider name used in logs
func (a *AnthropicClientAdapter) Provider() string {
	return configs.ProviderAnthropic
}

// mapError wraps an SDK error into the matching domain error
func mapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return fmt.Errorf("%w: status %d: %v", domain.ErrUnauthorized, status, err)
		case status == http.StatusTooManyRequests:
			return fmt.Errorf("%w: status %d: %v", domain.ErrCompletionUnavailable, status, err)
		case status >= 400 && status < 500:
			return fmt.Errorf("%w: status %d: %v", domain.ErrInvalidRequest, status, err)
		default:
			return fmt.Errorf("%w: status %d: %v", domain.ErrCompletionUnavailable, status, err)
		}
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

// ListModels returns the first page of models the API advertises
func (a *AnthropicClientAdapter) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	page, err := a.client.Models.List(ctx, anthropic.ModelListParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", mapError(err))
	}

	models := make([]domain.ModelInfo, len(page.Data))
	for i, m := range page.Data {
		models[i] = domain.ModelInfo{
			ID:      m.ID,
			Object:  "model",
			OwnedBy: configs.ProviderAnthropic,
		}
	}

	logrus.Infof("Listed %d models from Anthropic", len(models))

	return models, nil
}

// getModel returns the model to use for requests, with caching
func (a *AnthropicClientAdapter) getModel(ctx context.Context) (string, error) {
	a.modelMu.RLock()
	if a.cachedModel != "" {
		model := a.cachedModel
		a.modelMu.RUnlock()
		return model, nil
	}
	a.modelMu.RUnlock()

	a.modelMu.Lock()
	defer a.modelMu.Unlock()

	if a.cachedModel != "" {
		return a.cachedModel, nil
	}

	if a.configModel != "" {
		a.cachedModel = a.configModel
		logrus.Infof("Using configured Anthropic model: %s", a.cachedModel)
		return a.cachedModel, nil
	}

	models, err := a.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get models for selection: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no models available on Anthropic", domain.ErrCompletionUnavailable)
	}

	a.cachedModel = models[0].ID
	logrus.Infof("Selected first available model: %s", a.cachedModel)

	return a.cachedModel, nil
}

// ChatCompletion sends one Messages API request and returns the concatenated text blocks
func (a *AnthropicClientAdapter) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	model, err := a.getModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	if request.Model != nil && *request.Model != "" {
		model = *request.Model
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(request.MaxTokens),
	}

	// system messages go into the dedicated field, the rest are sent as turns
	for _, msg := range request.Messages {
		switch msg.Role {
		case domain.ChatMessageRoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: msg.Content})
		case domain.ChatMessageRoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	if request.Temperature != nil {
		params.Temperature = anthropic.Float(*request.Temperature)
	}

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to send message request: %w", mapError(err))
	}

	var content strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(content.String()) == "" {
		return nil, fmt.Errorf("%w: no text content in response", domain.ErrEmptyCompletion)
	}

	response := &domain.ChatCompletionResponse{
		Content:          content.String(),
		Model:            string(message.Model),
		PromptTokens:     int(message.Usage.InputTokens),
		CompletionTokens: int(message.Usage.OutputTokens),
		TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
	}

	logrus.Debugf("Anthropic message successful, model: %s, tokens: %d", response.Model, response.TotalTokens)

	return response, nil
}
