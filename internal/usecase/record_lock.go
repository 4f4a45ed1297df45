package usecase

import (
	"context"
	"sync"
)

// RecordLocks serializes mutations on the same record id within this
// process. An update and its refetch complete before the next mutation on
// that record starts; different records never wait on each other.
type RecordLocks struct {
	mu    sync.Mutex
	locks map[string]*recordLock
}

type recordLock struct {
	ch   chan struct{}
	refs int
}

func NewRecordLocks() *RecordLocks {
	return &RecordLocks{locks: map[string]*recordLock{}}
}

// acquire blocks until key is free or ctx is done. The returned func
// releases the key and must be called exactly once.
func (l *RecordLocks) acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	lk, ok := l.locks[key]
	if !ok {
		lk = &recordLock{ch: make(chan struct{}, 1)}
		l.locks[key] = lk
	}
	lk.refs++
	l.mu.Unlock()

	select {
	case lk.ch <- struct{}{}:
		return func() {
			<-lk.ch
			l.release(key, lk)
		}, nil
	case <-ctx.Done():
		l.release(key, lk)
		return nil, ctx.Err()
	}
}

func (l *RecordLocks) release(key string, lk *recordLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, key)
	}
}

// size reports how many keys are currently held or awaited.
func (l *RecordLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func orderKey(id string) string     { return "order:" + id }
func quotationKey(id string) string { return "quotation:" + id }

// fresh drops a result whose caller went away while the request was in
// flight.
func fresh[T any](ctx context.Context, v T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}
	return v, nil
}
