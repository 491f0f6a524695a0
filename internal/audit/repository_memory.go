package audit

import (
	"context"
	"sync"
	"time"
)

type InMemoryRecorder struct {
	mu      sync.Mutex
	Entries []Entry
}

func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

func (r *InMemoryRecorder) Record(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = len(r.Entries) + 1
	entry.CreatedAt = time.Now()
	r.Entries = append(r.Entries, entry)
	return nil
}
