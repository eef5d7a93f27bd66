package portalclient

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned for a response that was overtaken by a newer request.
var ErrStale = errors.New("portalclient: response superseded by a newer request")

// Sequencer hands out increasing tokens; only the most recent token is current.
type Sequencer struct {
	mu   sync.Mutex
	last uint64
}

func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

func (s *Sequencer) IsCurrent(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token == s.last
}

// Latest holds the result of the newest request for one view. Starting a request
// cancels the one before it, and a response that arrives after a newer request
// started is dropped.
type Latest[T any] struct {
	seq Sequencer

	mu      sync.Mutex
	cancel  context.CancelFunc
	value   T
	applied bool
}

// Fetch runs fn under a fresh token and stores its result if no newer Fetch has begun.
func (l *Latest[T]) Fetch(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = cancel
	token := l.seq.Next()
	l.mu.Unlock()

	v, err := fn(ctx)

	var zero T
	if !l.Apply(token, v, err) {
		return zero, ErrStale
	}
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Begin reserves a token for a request driven by the caller rather than Fetch.
func (l *Latest[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	return l.seq.Next()
}

// Apply records v when token is still current. A failed current request keeps the previous value.
func (l *Latest[T]) Apply(token uint64, v T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.seq.IsCurrent(token) {
		return false
	}
	if err == nil {
		l.value = v
		l.applied = true
	}
	return true
}

// Get returns the last applied value.
func (l *Latest[T]) Get() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.applied
}
