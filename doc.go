// Package rxstate is a small library for holding state that many
// goroutines want to read and mutate, and for running computations against
// it.
//
// A [Store] owns a single value of some type S. Producers on any goroutine
// call [Store.SetState] to submit a reducer, or [Store.WithState] to submit
// a read; both return immediately, the actual work is applied later, in
// order, by one worker goroutine. Consumers get the latest published value
// either directly with [Store.GetState], or as an ongoing view with
// [Store.Signal] or [Store.Stream].
//
// # Use Case #1: A Single Owner For State Many Goroutines Touch
//
// Instead of guarding a value with a mutex and hoping every access site
// remembers to take it, a [Store] gives the value exactly one goroutine
// that ever touches it directly. Everyone else submits work instead of
// taking a lock. There is no back pressure: submission is not designed to
// block, so a producer that outruns the worker can grow the queue
// unbounded. If that's a concern in some hot spot, throttle at the call
// site.
//
// # Use Case #2: Observing The Latest Value, Not Every Value
//
// [Store.Signal] and [Store.Stream] are lossy on purpose: a slow consumer
// only ever sees the most recently published value, never a backlog of
// every intermediate one. When a producer publishes faster than a consumer
// reads, values in between are simply skipped. If every state transition
// matters, submit reads through [Store.WithState] instead, since those are
// never dropped.
//
// # Use Case #3: Folding Computation Outcomes Into State
//
// The Execute and AsyncExecute families run a computation on its own
// goroutine and fold its outcome into state as an [AsyncT], a small
// lifecycle value that is always in exactly one of four states:
// Uninitialized, Loading, Success or Failure. The WithRetain variants keep
// the previous Success value visible through Loading and Failure, so a UI
// bound to the state doesn't need to flicker back to empty on every
// reload. The Cancellable variants take a context.Context and fold
// cancellation into a Failure rather than leaving it to the caller to
// notice a dangling goroutine. The WithTimeout variants race the
// computation against a deadline.
//
// # Reducers Must Be Pure And Fast
//
// A reducer passed to [Store.SetState] runs on the one worker goroutine
// that also runs every other reducer for that store. A reducer that
// blocks, sleeps, or does its own I/O stalls every other pending write and
// read. Kick off blocking work with Execute or AsyncExecute instead, and
// fold the result back in once it's ready.
//
// # Panics In Reducers Don't Take The Worker Down
//
// A panicking reducer or read is recovered and reported through
// [Store.OnPanic] if one is installed; the worker keeps draining its queue
// afterward. A panicking reducer's result is discarded and the state stays
// as it was before that reducer ran. Changes the reducer made before the
// panic through pointers, maps or slices shared with the stored state are
// not undone.
package rxstate
