package rxstate

import "context"

// Signal returns a fresh Observer positioned so its first Next call
// returns the current state immediately, and every subsequent call blocks
// until a newer value has been published or ctx is done.
func (s *Store[S]) Signal(ctx context.Context) *Observer[S] {
	return newObserver(s.slot, s.done, ctx.Done())
}

// Stream starts a goroutine pumping Signal(ctx) into a channel, closed
// once ctx is done or the store shuts down. The channel is unbuffered:
// a slow receiver misses intermediate values (the broadcaster is lossy by
// design), it never sees a backlog.
func (s *Store[S]) Stream(ctx context.Context) <-chan S {
	out := make(chan S)
	obs := s.Signal(ctx)
	go func() {
		defer close(out)
		for {
			v, ok := obs.Next(nil)
			if !ok {
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// StopIf wraps a channel of values (typically from Store.Stream) with a
// channel that relays values from in until pred first returns true for one
// of them, relaying that final value too, then closing — the Go shape of
// stopping a stream once a predicate is satisfied, translated from a
// polled-stream combinator into a pumping goroutine since Go streams are
// channels rather than pollable futures.
func StopIf[S any](in <-chan S, pred func(S) bool) <-chan S {
	out := make(chan S)
	go func() {
		defer close(out)
		for v := range in {
			out <- v
			if pred(v) {
				return
			}
		}
	}()
	return out
}
