package catalog

import (
	"context"
	"time"
)

// State is the lifecycle of a delayed mutation.
type State int

const (
	StatePending State = iota
	StateCommitted
)

func (s State) String() string {
	if s == StateCommitted {
		return "committed"
	}
	return "pending"
}

// Pending is a mutation waiting for its timer. Its result, such as the ID
// of a created course, is only known once it commits.
type Pending[T any] struct {
	value T
	done  chan struct{}
}

// Done is closed once the mutation has been applied.
func (p *Pending[T]) Done() <-chan struct{} { return p.done }

// State reports whether the mutation has been applied yet.
func (p *Pending[T]) State() State {
	select {
	case <-p.done:
		return StateCommitted
	default:
		return StatePending
	}
}

// Committed reports whether the mutation has been applied.
func (p *Pending[T]) Committed() bool { return p.State() == StateCommitted }

// Wait blocks until the mutation is applied or ctx ends. A ctx error only
// stops the wait; the mutation still lands.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// after runs apply once delay has elapsed and commits its result.
func after[T any](s *Service, delay time.Duration, apply func() T) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	s.inflight.Add(1)
	time.AfterFunc(delay, func() {
		defer s.inflight.Done()
		p.value = apply()
		close(p.done)
	})
	return p
}
