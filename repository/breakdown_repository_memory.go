package repository

import (
	"sync"

	"paycheck-agent/domain"
)

// BreakdownRepositoryMemory keeps only the latest breakdown in memory. Every
// Save overwrites the previous value.
type BreakdownRepositoryMemory struct {
	mu     sync.RWMutex
	latest *domain.Breakdown
}

// NewBreakdownRepositoryMemory creates an empty in-memory repository.
func NewBreakdownRepositoryMemory() *BreakdownRepositoryMemory {
	return &BreakdownRepositoryMemory{}
}

// Save replaces the stored breakdown.
func (r *BreakdownRepositoryMemory) Save(result domain.Breakdown) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.latest = &result
	return nil
}

// Latest returns the stored breakdown, if any.
func (r *BreakdownRepositoryMemory) Latest() (domain.Breakdown, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.latest == nil {
		return domain.Breakdown{}, false
	}
	return *r.latest, true
}

// Reset discards the stored breakdown.
func (r *BreakdownRepositoryMemory) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.latest = nil
}
