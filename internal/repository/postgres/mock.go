package postgres

import (
	"context"
	"sync"

	"github.com/smartcity/erbil-dashboard/internal/domain"
)

// DefaultMockLogLimit bounds the in-memory render log
const DefaultMockLogLimit = 1000

// MockRepository implements domain.RenderLogRepository for testing/demo mode.
// Only the most recent entries are kept in memory.
type MockRepository struct {
	mu    sync.Mutex
	limit int
	logs  []domain.RenderLog
}

// NewMockRepository creates a new mock repository holding DefaultMockLogLimit entries
func NewMockRepository() *MockRepository {
	return NewMockRepositoryWithLimit(DefaultMockLogLimit)
}

// NewMockRepositoryWithLimit creates a mock repository that keeps the last limit entries
func NewMockRepositoryWithLimit(limit int) *MockRepository {
	if limit <= 0 {
		limit = DefaultMockLogLimit
	}
	return &MockRepository{limit: limit}
}

// EnsureSchema is a no-op in mock mode
func (r *MockRepository) EnsureSchema(ctx context.Context) error {
	return nil
}

// SaveRenderLog records the entry, evicting the oldest once the limit is reached
func (r *MockRepository) SaveRenderLog(ctx context.Context, entry domain.RenderLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limit == 0 {
		r.limit = DefaultMockLogLimit
	}
	if len(r.logs) >= r.limit {
		n := copy(r.logs, r.logs[len(r.logs)-r.limit+1:])
		r.logs = r.logs[:n]
	}
	r.logs = append(r.logs, entry)
	return nil
}

// Logs returns a copy of the recorded entries, oldest first
func (r *MockRepository) Logs() []domain.RenderLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.RenderLog, len(r.logs))
	copy(out, r.logs)
	return out
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
