package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
)

// LocalLocker serialises slot work inside one process. The ttl argument is
// ignored: a local holder cannot die without the whole process going with it.
type LocalLocker struct {
	wait time.Duration

	mu    sync.Mutex
	slots map[string]*slotLock
}

type slotLock struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		wait:  wait,
		slots: make(map[string]*slotLock),
	}
}

func (l *LocalLocker) Lock(ctx context.Context, key string, _ time.Duration) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slotLock{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case s.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-s.ch
				l.release(key, s)
			})
		}, nil
	case <-ctx.Done():
		l.release(key, s)
		return nil, fmt.Errorf("%w: lock %s: %v", domain.ErrTransient, key, ctx.Err())
	case <-timer.C:
		l.release(key, s)
		return nil, fmt.Errorf("%w: lock %s: timed out after %s", domain.ErrTransient, key, l.wait)
	}
}

func (l *LocalLocker) release(key string, s *slotLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

var _ domain.SlotLocker = (*LocalLocker)(nil)
