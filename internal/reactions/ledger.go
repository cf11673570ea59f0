package reactions

import (
	"context"
	"sync"
)

// Ledger is an append-only record of reactions per post
type Ledger interface {
	Append(ctx context.Context, r Reaction) error
	Count(ctx context.Context, postID int64, kind Kind) (int64, error)
}

// MemoryLedger keeps reactions in process memory
type MemoryLedger struct {
	mu      sync.RWMutex
	entries map[Kind]map[int64][]Reaction
}

// NewMemoryLedger creates an empty in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: map[Kind]map[int64][]Reaction{
			KindLike:    {},
			KindDislike: {},
		},
	}
}

// Append records a reaction
func (l *MemoryLedger) Append(ctx context.Context, r Reaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	byPost, ok := l.entries[r.Kind]
	if !ok {
		byPost = make(map[int64][]Reaction)
		l.entries[r.Kind] = byPost
	}
	byPost[r.PostID] = append(byPost[r.PostID], r)
	return nil
}

// Count returns how many reactions of kind were recorded for postID
func (l *MemoryLedger) Count(ctx context.Context, postID int64, kind Kind) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return int64(len(l.entries[kind][postID])), nil
}
