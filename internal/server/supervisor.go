package server

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

type FaultKind int

const (
	// UncaughtException is a panic in a supervised goroutine.
	UncaughtException FaultKind = iota + 1
	// UnhandledRejection is an error returned by a supervised goroutine.
	UnhandledRejection
)

// Fault is a failure that takes the whole process down.
type Fault struct {
	Kind FaultKind
	Err  error
}

func (f *Fault) Error() string {
	return f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Diagnostic is the fixed line logged before shutting down.
func (f *Fault) Diagnostic() string {
	if f.Kind == UncaughtException {
		return "Shutting down the server due to uncaught exception"
	}
	return "Shutting down the server due to unhandled Promise Rejection"
}

// Supervisor runs the background goroutines of the process. The first
// fault cancels the context handed to every goroutine.
type Supervisor struct {
	group *errgroup.Group
	ctx   context.Context

	mu    sync.Mutex
	fault *Fault
}

func NewSupervisor(ctx context.Context) *Supervisor {
	group, groupCtx := errgroup.WithContext(ctx)
	return &Supervisor{group: group, ctx: groupCtx}
}

// Context is done once the parent context ends or a fault occurs.
func (s *Supervisor) Context() context.Context {
	return s.ctx
}

// Go runs fn in a goroutine. fn should return nil once its context is done.
func (s *Supervisor) Go(fn func(ctx context.Context) error) {
	s.group.Go(func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = s.record(&Fault{Kind: UncaughtException, Err: fmt.Errorf("%v", rec)})
			}
		}()

		if err := fn(s.ctx); err != nil {
			return s.record(&Fault{Kind: UnhandledRejection, Err: err})
		}
		return nil
	})
}

func (s *Supervisor) record(f *Fault) *Fault {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault == nil {
		s.fault = f
	}
	return f
}

// Fault returns the first fault, or nil.
func (s *Supervisor) Fault() *Fault {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fault
}

func (s *Supervisor) Wait() error {
	return s.group.Wait()
}
