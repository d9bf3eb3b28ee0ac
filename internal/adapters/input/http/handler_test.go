package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"predictive-keyboard/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// MockPredictionService implements input.PredictionService for testing
type MockPredictionService struct {
	PredictCharFunc func(ctx context.Context, text string) (*domain.PredictionResult, error)
	PredictWordFunc func(ctx context.Context, text string, words []string) (*domain.PredictionResult, error)

	LastText  string
	LastWords []string
}

func (m *MockPredictionService) PredictChar(ctx context.Context, text string) (*domain.PredictionResult, error) {
	m.LastText = text
	if m.PredictCharFunc != nil {
		return m.PredictCharFunc(ctx, text)
	}
	return &domain.PredictionResult{Predictions: domain.EmptyPredictions(), Outcome: domain.OutcomeSkipped}, nil
}

func (m *MockPredictionService) PredictWord(ctx context.Context, text string, words []string) (*domain.PredictionResult, error) {
	m.LastText = text
	m.LastWords = words
	if m.PredictWordFunc != nil {
		return m.PredictWordFunc(ctx, text, words)
	}
	return &domain.PredictionResult{Predictions: domain.EmptyPredictions(), Outcome: domain.OutcomeSkipped}, nil
}

// MockPredictionLogService implements input.PredictionLogService for testing
type MockPredictionLogService struct {
	GetPredictionLogsFunc func(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error)

	LastCondition *domain.QueryPredictionLogRequest
}

func (m *MockPredictionLogService) GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
	m.LastCondition = &condition
	if m.GetPredictionLogsFunc != nil {
		return m.GetPredictionLogsFunc(condition)
	}
	return &domain.PredictionLogListResponse{Logs: []domain.PredictionLogResponse{}}, nil
}

func newTestApp(predictions *MockPredictionService, logs *MockPredictionLogService, ping func() error) *fiber.App {
	app := fiber.New()
	New(predictions, logs, ping).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, data
}

func TestPredictCharReturnsBareList(t *testing.T) {
	predictions := &MockPredictionService{
		PredictCharFunc: func(ctx context.Context, text string) (*domain.PredictionResult, error) {
			return &domain.PredictionResult{
				Predictions: domain.PredictionList{{Symbol: "r", Confidence: 0.8}, {Symbol: "p", Confidence: 0.1}},
				Outcome:     domain.OutcomeOK,
			}, nil
		},
	}
	app := newTestApp(predictions, &MockPredictionLogService{}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/predict-char", `{"text":"I need to go to the sto"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if resp.Header.Get(OutcomeHeader) != "ok" {
		t.Errorf("expected outcome header ok, got %q", resp.Header.Get(OutcomeHeader))
	}

	var got []CharPrediction
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("expected a JSON array, got %s", body)
	}
	want := []CharPrediction{{Character: "r", Confidence: 0.8}, {Character: "p", Confidence: 0.1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if predictions.LastText != "I need to go to the sto" {
		t.Errorf("unexpected text passed to service: %q", predictions.LastText)
	}
}

func TestPredictCharEmptyListIsNotAnError(t *testing.T) {
	predictions := &MockPredictionService{
		PredictCharFunc: func(ctx context.Context, text string) (*domain.PredictionResult, error) {
			return &domain.PredictionResult{Predictions: domain.EmptyPredictions(), Outcome: domain.OutcomeTimeout}, nil
		},
	}
	app := newTestApp(predictions, &MockPredictionLogService{}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/predict-char", `{"text":"hel"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected [], got %s", body)
	}
	if resp.Header.Get(OutcomeHeader) != "timeout" {
		t.Errorf("expected outcome header timeout, got %q", resp.Header.Get(OutcomeHeader))
	}
}

func TestPredictCharAcceptsEmptyText(t *testing.T) {
	predictions := &MockPredictionService{}
	app := newTestApp(predictions, &MockPredictionLogService{}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/predict-char", `{"text":""}`)
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected 200 with [], got %d: %s", resp.StatusCode, body)
	}
}

func TestPredictCharBadRequests(t *testing.T) {
	app := newTestApp(&MockPredictionService{}, &MockPredictionLogService{}, nil)

	for _, body := range []string{`{}`, `{"text": null}`, `not json`, `{"text": 12}`} {
		resp, data := doJSON(t, app, http.MethodPost, "/predict-char", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, resp.StatusCode)
		}
		var envelope ResponseBody
		if err := json.Unmarshal(data, &envelope); err != nil || envelope.Status.Code != http.StatusBadRequest {
			t.Errorf("%s: expected error envelope, got %s", body, data)
		}
	}
}

func TestPredictCharInternalFault(t *testing.T) {
	predictions := &MockPredictionService{
		PredictCharFunc: func(ctx context.Context, text string) (*domain.PredictionResult, error) {
			return nil, errors.New("template exploded")
		},
	}
	app := newTestApp(predictions, &MockPredictionLogService{}, nil)

	resp, _ := doJSON(t, app, http.MethodPost, "/predict-char", `{"text":"hel"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
}

func TestPredictWordReturnsBareList(t *testing.T) {
	predictions := &MockPredictionService{
		PredictWordFunc: func(ctx context.Context, text string, words []string) (*domain.PredictionResult, error) {
			return &domain.PredictionResult{
				Predictions: domain.PredictionList{{Symbol: "cookie", Confidence: 0.9}, {Symbol: "pizza", Confidence: 0.4}},
				Outcome:     domain.OutcomeOK,
			}, nil
		},
	}
	app := newTestApp(predictions, &MockPredictionLogService{}, nil)

	resp, body := doJSON(t, app, http.MethodPost, "/predict-word", `{"text":"For dessert, I am going to eat a","word_list":["cookie","pizza","chair"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var got []WordPrediction
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("expected a JSON array, got %s", body)
	}
	if len(got) != 2 || got[0].Word != "cookie" || got[1].Word != "pizza" || got[0].Confidence != 0.9 {
		t.Errorf("unexpected body: %+v", got)
	}
	if strings.Join(predictions.LastWords, ",") != "cookie,pizza,chair" {
		t.Errorf("unexpected words passed to service: %v", predictions.LastWords)
	}
}

func TestPredictWordValidation(t *testing.T) {
	app := newTestApp(&MockPredictionService{}, &MockPredictionLogService{}, nil)

	tooMany := `{"text":"a","word_list":[` + strings.TrimSuffix(strings.Repeat(`"w",`, 201), ",") + `]}`
	for _, body := range []string{`{"text":"a"}`, `{"word_list":["a"]}`, `{"text":"a","word_list":"cookie"}`, tooMany} {
		resp, _ := doJSON(t, app, http.MethodPost, "/predict-word", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%.40s: expected 400, got %d", body, resp.StatusCode)
		}
	}

	// an empty list is valid input and yields an empty answer
	resp, body := doJSON(t, app, http.MethodPost, "/predict-word", `{"text":"a","word_list":[]}`)
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected 200 with [], got %d: %s", resp.StatusCode, body)
	}
}

func TestGetPredictionLogs(t *testing.T) {
	total := int64(1)
	page, perPage := 1, 100
	logs := &MockPredictionLogService{
		GetPredictionLogsFunc: func(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
			return &domain.PredictionLogListResponse{
				Logs:        []domain.PredictionLogResponse{{Mode: "char", Outcome: "ok", LatencyMs: 120}},
				CurrentPage: &page,
				PerPage:     &perPage,
				TotalItem:   &total,
			}, nil
		},
	}
	app := newTestApp(&MockPredictionService{}, logs, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/v1/api/prediction-logs?mode=char&outcome=ok&order_by=latency_ms&asc=true", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	c := logs.LastCondition
	if *c.Mode != "char" || *c.Outcome != "ok" || *c.OrderBy != "latency_ms" || !*c.Asc {
		t.Errorf("unexpected condition: %+v", c)
	}

	var envelope struct {
		Data      []PredictionLogResponse `json:"data"`
		TotalItem int64                   `json:"total_item"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].LatencyMs != 120 || envelope.TotalItem != 1 {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestGetPredictionLogsBadQuery(t *testing.T) {
	logs := &MockPredictionLogService{
		GetPredictionLogsFunc: func(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
			return nil, domain.ErrInvalidQuery
		},
	}
	app := newTestApp(&MockPredictionService{}, logs, nil)

	resp, _ := doJSON(t, app, http.MethodGet, "/v1/api/prediction-logs?mode=line", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown mode, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodGet, "/v1/api/prediction-logs?order_by=secret", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for rejected sort column, got %d", resp.StatusCode)
	}
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(&MockPredictionService{}, &MockPredictionLogService{}, nil)
	resp, _ := doJSON(t, app, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 without database, got %d", resp.StatusCode)
	}

	app = newTestApp(&MockPredictionService{}, &MockPredictionLogService{}, func() error { return errors.New("down") })
	resp, _ = doJSON(t, app, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when ping fails, got %d", resp.StatusCode)
	}
}
