package rxstate

import (
	"context"
	"time"
)

// Computation is a blocking-shaped unit of work dispatched onto its own
// goroutine by the Execute family, the Go analogue of spawn_blocking.
type Computation[T any] func() (T, error)

// CancellableComputation is a blocking-shaped unit of work dispatched onto
// its own goroutine, handed ctx so it can check it at its own choosing (a
// long select loop, a context-aware sub-call), used by the
// ExecuteCancellable family. Grounded on execute_cancellable's
// `F: FnOnce(CancellationToken) -> R` in
// original_source/easerx/src/state_store.rs:279-296, which hands the token
// to the blocking closure directly rather than only checking it at the
// boundaries.
type CancellableComputation[T any] func(ctx context.Context) (T, error)

// AsyncComputation is a unit of work that cooperates with a context itself
// (via channel selects, or by passing ctx down into further calls), the Go
// analogue of an already-running future, used by the AsyncExecute family.
type AsyncComputation[T any] func(ctx context.Context) (T, error)

// Into folds a lifecycle value into state, typically by writing it to one
// field. Getter extracts the counterpart value back out of state, used to
// capture a retained value at loading time.
type Into[S, T any] func(S, AsyncT[T]) S
type Getter[S, T any] func(S) T

// Store methods cannot introduce their own type parameters in Go, so the
// execution combinators are free functions taking the store explicitly,
// grounded on original_source/easerx/src/state_store.rs's execute_* family
// of StateStore methods.

// Execute runs fn on its own goroutine, writing Loading then the outcome
// into state via into, with no retention and no cancellation.
func Execute[S, T any](s *Store[S], into Into[S, T], fn Computation[T]) {
	_ = s.SetState(func(v S) S { return into(v, Loading[T]()) })
	go func() {
		value, err := fn()
		outcome := liftResult(value, err)
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// ExecuteWithRetain behaves like Execute, but captures get(state) at the
// moment the Loading write applies and threads it through as the retained
// value on Failure (or as Loading's own retained value while in flight).
func ExecuteWithRetain[S, T any](s *Store[S], into Into[S, T], get Getter[S, T], fn Computation[T]) {
	retained := make(chan *T, 1)
	err := s.SetState(func(v S) S {
		prior := get(v)
		retained <- &prior
		return into(v, Loading(prior))
	})
	if err != nil {
		return
	}
	go func() {
		value, err := fn()
		outcome := liftResult(value, err)
		prior := <-retained
		outcome = withRetainFromOutcome(outcome, prior)
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// ExecuteCancellable always writes Loading first, exactly as the Rust core
// does in execute_blocking_core before its cancellable select ever runs;
// only then is ctx checked once, deciding whether fn is spawned at all.
// fn is handed ctx so it can additionally cooperate with cancellation
// itself while running; ctx is checked once more at outcome time, so a
// computation that finishes successfully right as its context is cancelled
// loses the race deterministically to whichever check runs last.
func ExecuteCancellable[S, T any](s *Store[S], ctx context.Context, into Into[S, T], fn CancellableComputation[T]) {
	_ = s.SetState(func(v S) S { return into(v, Loading[T]()) })
	if ctx.Err() != nil {
		_ = s.SetState(func(v S) S { return into(v, Failure[T](NewCancelledError())) })
		return
	}
	go func() {
		value, err := fn(ctx)
		var outcome AsyncT[T]
		if ctx.Err() != nil {
			outcome = Failure[T](NewCancelledError())
		} else {
			outcome = liftResult(value, err)
		}
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// ExecuteCancellableWithRetain combines ExecuteCancellable's cancellation
// handling with ExecuteWithRetain's retained-value threading. As with
// ExecuteCancellable, the Loading write (with its captured retained value)
// always happens before ctx is checked.
func ExecuteCancellableWithRetain[S, T any](s *Store[S], ctx context.Context, into Into[S, T], get Getter[S, T], fn CancellableComputation[T]) {
	retained := make(chan *T, 1)
	err := s.SetState(func(v S) S {
		prior := get(v)
		retained <- &prior
		return into(v, Loading(prior))
	})
	if err != nil {
		return
	}
	if ctx.Err() != nil {
		go func() {
			prior := <-retained
			_ = s.SetState(func(v S) S { return into(v, Failure(NewCancelledError(), *prior)) })
		}()
		return
	}
	go func() {
		value, err := fn(ctx)
		prior := <-retained
		var outcome AsyncT[T]
		if ctx.Err() != nil {
			outcome = Failure[T](NewCancelledError())
		} else {
			outcome = liftResult(value, err)
		}
		outcome = withRetainFromOutcome(outcome, prior)
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// ExecuteWithTimeout runs fn on its own goroutine, racing it against a
// timer. Whichever finishes first determines the outcome: the race is a
// select over fn's result channel and the timer's channel, so once one of
// them is chosen the other is ignored. If both are ready when the select
// runs, either may be chosen.
func ExecuteWithTimeout[S, T any](s *Store[S], timeout time.Duration, into Into[S, T], fn Computation[T]) {
	_ = s.SetState(func(v S) S { return into(v, Loading[T]()) })
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value, err}
	}()
	go func() {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		var outcome AsyncT[T]
		select {
		case r := <-done:
			outcome = liftResult(r.value, r.err)
		case <-timer.C:
			outcome = Failure[T](NewTimeoutError())
		}
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// AsyncExecute runs fn, which is expected to cooperate with context
// cancellation itself, with no retention and no externally imposed
// deadline beyond ctx's own.
func AsyncExecute[S, T any](s *Store[S], ctx context.Context, into Into[S, T], fn AsyncComputation[T]) {
	_ = s.SetState(func(v S) S { return into(v, Loading[T]()) })
	go func() {
		value, err := fn(ctx)
		outcome := liftResult(value, err)
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// AsyncExecuteWithRetain behaves like AsyncExecute with retained-value
// threading, as ExecuteWithRetain does for Execute.
func AsyncExecuteWithRetain[S, T any](s *Store[S], ctx context.Context, into Into[S, T], get Getter[S, T], fn AsyncComputation[T]) {
	retained := make(chan *T, 1)
	err := s.SetState(func(v S) S {
		prior := get(v)
		retained <- &prior
		return into(v, Loading(prior))
	})
	if err != nil {
		return
	}
	go func() {
		value, err := fn(ctx)
		outcome := liftResult(value, err)
		prior := <-retained
		outcome = withRetainFromOutcome(outcome, prior)
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// AsyncExecuteCancellable behaves like ExecuteCancellable for a
// context-cooperating computation: the Loading write always happens first,
// then ctx is checked once before dispatch and once again at outcome time.
func AsyncExecuteCancellable[S, T any](s *Store[S], ctx context.Context, into Into[S, T], fn AsyncComputation[T]) {
	_ = s.SetState(func(v S) S { return into(v, Loading[T]()) })
	if ctx.Err() != nil {
		_ = s.SetState(func(v S) S { return into(v, Failure[T](NewCancelledError())) })
		return
	}
	go func() {
		value, err := fn(ctx)
		var outcome AsyncT[T]
		if ctx.Err() != nil {
			outcome = Failure[T](NewCancelledError())
		} else {
			outcome = liftResult(value, err)
		}
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// AsyncExecuteCancellableWithRetain combines AsyncExecuteCancellable and
// AsyncExecuteWithRetain: the Loading write (with its captured retained
// value) always happens before ctx is checked.
func AsyncExecuteCancellableWithRetain[S, T any](s *Store[S], ctx context.Context, into Into[S, T], get Getter[S, T], fn AsyncComputation[T]) {
	retained := make(chan *T, 1)
	err := s.SetState(func(v S) S {
		prior := get(v)
		retained <- &prior
		return into(v, Loading(prior))
	})
	if err != nil {
		return
	}
	if ctx.Err() != nil {
		go func() {
			prior := <-retained
			_ = s.SetState(func(v S) S { return into(v, Failure(NewCancelledError(), *prior)) })
		}()
		return
	}
	go func() {
		value, err := fn(ctx)
		prior := <-retained
		var outcome AsyncT[T]
		if ctx.Err() != nil {
			outcome = Failure[T](NewCancelledError())
		} else {
			outcome = liftResult(value, err)
		}
		outcome = withRetainFromOutcome(outcome, prior)
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}

// AsyncExecuteWithTimeout derives a child context with the given timeout
// and runs fn against it; a DeadlineExceeded error surfacing from fn (or
// from the context itself once fn returns) is reported as a timeout
// failure rather than a generic message.
func AsyncExecuteWithTimeout[S, T any](s *Store[S], ctx context.Context, timeout time.Duration, into Into[S, T], fn AsyncComputation[T]) {
	_ = s.SetState(func(v S) S { return into(v, Loading[T]()) })
	go func() {
		childCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		value, err := fn(childCtx)
		var outcome AsyncT[T]
		if isContextDeadlineExceeded(err) || isContextDeadlineExceeded(childCtx.Err()) {
			outcome = Failure[T](NewTimeoutError())
		} else {
			outcome = liftResult(value, err)
		}
		_ = s.SetState(func(v S) S { return into(v, outcome) })
	}()
}
