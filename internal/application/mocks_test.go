package application

import (
	"context"
	"sync"

	"predictive-keyboard/internal/domain"
)

// Mock implementations for testing

// MockCompletionClient implements output.CompletionClient for testing
type MockCompletionClient struct {
	ChatCompletionFunc func(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)
	ListModelsFunc     func(ctx context.Context) ([]domain.ModelInfo, error)
	ProviderName       string

	// Captured values for assertions
	mu              sync.Mutex
	Calls           int
	LastChatRequest *domain.ChatCompletionRequest
}

func (m *MockCompletionClient) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	m.mu.Lock()
	m.Calls++
	m.LastChatRequest = &request
	m.mu.Unlock()
	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, request)
	}
	return &domain.ChatCompletionResponse{Content: "NONE", Model: "mock-model"}, nil
}

func (m *MockCompletionClient) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, nil
}

func (m *MockCompletionClient) Provider() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *MockCompletionClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// replyWith returns a ChatCompletionFunc answering with fixed content
func replyWith(content string) func(context.Context, domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	return func(context.Context, domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
		return &domain.ChatCompletionResponse{Content: content, Model: "mock-model"}, nil
	}
}

// MockPromptBuilder implements output.PromptBuilder for testing
type MockPromptBuilder struct {
	CharPromptFunc func(text string) (domain.Prompt, error)
	WordPromptFunc func(text string, words []string) (domain.Prompt, error)

	LastWords []string
}

func (m *MockPromptBuilder) CharPrompt(text string) (domain.Prompt, error) {
	if m.CharPromptFunc != nil {
		return m.CharPromptFunc(text)
	}
	return domain.Prompt{System: "char", User: text}, nil
}

func (m *MockPromptBuilder) WordPrompt(text string, words []string) (domain.Prompt, error) {
	m.LastWords = words
	if m.WordPromptFunc != nil {
		return m.WordPromptFunc(text, words)
	}
	return domain.Prompt{System: "word", User: text}, nil
}

// MockPredictionLogRepository implements output.PredictionLogRepository for testing
type MockPredictionLogRepository struct {
	CreatePredictionLogFunc func(ctx context.Context, entry *domain.PredictionLog) error
	GetPredictionLogsFunc   func(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error)

	mu            sync.Mutex
	Created       []*domain.PredictionLog
	LastCondition *domain.QueryPredictionLogRequest
}

func (m *MockPredictionLogRepository) CreatePredictionLog(ctx context.Context, entry *domain.PredictionLog) error {
	m.mu.Lock()
	m.Created = append(m.Created, entry)
	m.mu.Unlock()
	if m.CreatePredictionLogFunc != nil {
		return m.CreatePredictionLogFunc(ctx, entry)
	}
	return nil
}

func (m *MockPredictionLogRepository) GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
	m.LastCondition = &condition
	if m.GetPredictionLogsFunc != nil {
		return m.GetPredictionLogsFunc(condition)
	}
	return &domain.PredictionLogListResponse{Logs: []domain.PredictionLogResponse{}}, nil
}

func (m *MockPredictionLogRepository) Entries() []*domain.PredictionLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.PredictionLog(nil), m.Created...)
}
