package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/erp/backoffice/internal/application/crud"
)

// LocalLocker serializes callers within one process. Each key holds a
// one-slot channel so waiters can give up when their context ends.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
	wait  time.Duration
}

// NewLocalLocker creates a process-local locker. wait bounds how long Lock
// blocks on a held key; zero waits until the context ends.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		slots: make(map[string]chan struct{}),
		wait:  wait,
	}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Lock acquires key, blocking until it is free or the wait elapses
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	ch := l.slot(key)
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to acquire lock %q: %w", key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-ch })
	}, nil
}

var _ crud.Locker = (*LocalLocker)(nil)
