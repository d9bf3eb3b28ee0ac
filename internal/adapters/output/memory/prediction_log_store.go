package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"predictive-keyboard/internal/domain"
	"predictive-keyboard/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure MemoryPredictionLogStore implements PredictionLogRepository interface
var _ output.PredictionLogRepository = (*MemoryPredictionLogStore)(nil)

// DefaultCapacity is used when the configured capacity is not positive
const DefaultCapacity = 1000

// MemoryPredictionLogStore struct - Output adapter keeping the most recent prediction logs in memory.
// Once full, the oldest entry is overwritten.
type MemoryPredictionLogStore struct {
	mu      sync.RWMutex
	entries []domain.PredictionLog
	next    int
	full    bool
}

// NewMemoryPredictionLogStore creates a ring buffer holding at most capacity entries
func NewMemoryPredictionLogStore(capacity int) *MemoryPredictionLogStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryPredictionLogStore{
		entries: make([]domain.PredictionLog, capacity),
	}
}

// CreatePredictionLog stores a copy of the entry, assigning ID and CreatedAt when missing
func (m *MemoryPredictionLogStore) CreatePredictionLog(ctx context.Context, entry *domain.PredictionLog) error {
	if entry.ID == nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return err
		}
		entry.ID = &id
	}
	if entry.CreatedAt == nil {
		now := time.Now()
		entry.CreatedAt = &now
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[m.next] = *entry
	m.next = (m.next + 1) % len(m.entries)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

// Len returns the number of stored entries
func (m *MemoryPredictionLogStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.full {
		return len(m.entries)
	}
	return m.next
}

// snapshot copies the stored entries, oldest first
func (m *MemoryPredictionLogStore) snapshot() []domain.PredictionLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.full {
		out := make([]domain.PredictionLog, m.next)
		copy(out, m.entries[:m.next])
		return out
	}
	out := make([]domain.PredictionLog, 0, len(m.entries))
	out = append(out, m.entries[m.next:]...)
	return append(out, m.entries[:m.next]...)
}

// GetPredictionLogs filters, sorts and paginates the stored entries
func (m *MemoryPredictionLogStore) GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
	matched := make([]domain.PredictionLog, 0)
	for _, e := range m.snapshot() {
		if condition.Mode != nil && string(e.Mode) != *condition.Mode {
			continue
		}
		if condition.Outcome != nil && string(e.Outcome) != *condition.Outcome {
			continue
		}
		matched = append(matched, e)
	}

	order := "created_at"
	asc := false
	if condition.SortMethod != nil {
		if condition.SortMethod.OrderBy != "" {
			order = condition.SortMethod.OrderBy
		}
		asc = condition.SortMethod.Asc
	}
	less := lessFunc(order)
	sort.SliceStable(matched, func(i, j int) bool {
		if asc {
			return less(matched[i], matched[j])
		}
		return less(matched[j], matched[i])
	})

	totalItem := int64(len(matched))
	pagination := domain.Pagination{Limit: len(matched)}
	if condition.Pagination != nil {
		pagination = *condition.Pagination
	}
	start := pagination.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if pagination.Limit >= 0 && start+pagination.Limit < end {
		end = start + pagination.Limit
	}

	result := domain.PredictionLogListResponse{
		Logs: []domain.PredictionLogResponse{},
	}
	result.CurrentPage = condition.Page
	result.PerPage = &pagination.Limit
	result.TotalItem = &totalItem
	for i := start; i < end; i++ {
		result.Logs = append(result.Logs, matched[i].ToResponse())
	}
	return &result, nil
}

func lessFunc(column string) func(a, b domain.PredictionLog) bool {
	switch column {
	case "latency_ms":
		return func(a, b domain.PredictionLog) bool { return a.LatencyMs < b.LatencyMs }
	case "result_count":
		return func(a, b domain.PredictionLog) bool { return a.ResultCount < b.ResultCount }
	case "input_length":
		return func(a, b domain.PredictionLog) bool { return a.InputLength < b.InputLength }
	default:
		return func(a, b domain.PredictionLog) bool { return a.CreatedAt.Before(*b.CreatedAt) }
	}
}
