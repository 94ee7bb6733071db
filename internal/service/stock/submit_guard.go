package stock

import (
	"context"
	"sync"
)

// SubmitGuard tracks mutations that are in flight, keyed by product id.
type SubmitGuard struct {
	inflight map[string]struct{}
	mu       sync.Mutex
}

// NewSubmitGuard creates an empty guard.
func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{
		inflight: make(map[string]struct{}),
	}
}

// TryAcquire marks key as in flight. It returns false if key already is.
func (g *SubmitGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

// Release clears key.
func (g *SubmitGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}

// TryLock implements Locker.
func (g *SubmitGuard) TryLock(_ context.Context, key string) (func(context.Context) error, bool, error) {
	if !g.TryAcquire(key) {
		return nil, false, nil
	}
	return func(context.Context) error {
		g.Release(key)
		return nil
	}, true, nil
}
