package repository

import (
	"context"
	"sync"

	"github.com/somnia-labs/sleep-insights-engine/internal/core/domain"
)

// InMemoryRecordRepository holds a fixed dataset in memory. Used as a test
// double wherever a real file or database would get in the way.
type InMemoryRecordRepository struct {
	mu      sync.RWMutex
	records []domain.SleepRecord
	err     error
}

func NewInMemoryRecordRepository(records ...domain.SleepRecord) *InMemoryRecordRepository {
	return &InMemoryRecordRepository{records: records}
}

// FailWith makes every subsequent ListAll return err instead of data.
func (r *InMemoryRecordRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = err
}

func (r *InMemoryRecordRepository) ListAll(ctx context.Context) ([]domain.SleepRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return nil, r.err
	}

	out := make([]domain.SleepRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
