package rxstate

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrClosed is returned by SetState, WithState and AwaitState once the
// owning Store has shut down.
var ErrClosed = errors.New("rxstate: store closed")

// Store owns a value of type S, mutated only by serialized reducers
// submitted from any number of goroutines, and observed as a lossy stream
// of the latest value. The zero Store is not usable; construct one with
// NewStore.
type Store[S any] struct {
	q       *opqueue[S]
	slot    *latest[S]
	done    chan struct{}
	refs    atomic.Int32
	onPanic atomic.Pointer[func(recovered any, stack []byte)]
}

// NewStore starts a worker goroutine owning initial and returns a Store
// with one outstanding reference already accounted for; call Close when
// done with it. That reference is released only by Close.
func NewStore[S any](initial S) *Store[S] {
	s := &Store[S]{
		q:    newOpQueue[S](),
		slot: newLatest(initial),
		done: make(chan struct{}),
	}
	s.refs.Store(1)
	go func() {
		runWorker(initial, s.q, s.slot, s.dispatchPanic)
		close(s.done)
	}()
	return s
}

func (s *Store[S]) dispatchPanic(recovered any, stack []byte) {
	if p := s.onPanic.Load(); p != nil {
		(*p)(recovered, stack)
	}
}

// OnPanic installs a hook invoked whenever a reducer or read operation
// panics; the panic is otherwise fully contained and does not stop the
// worker. Passing nil disables the hook.
func (s *Store[S]) OnPanic(f func(recovered any, stack []byte)) {
	if f == nil {
		s.onPanic.Store(nil)
		return
	}
	s.onPanic.Store(&f)
}

// SetState enqueues a reducer that replaces state with f(state). It never
// blocks. Reducers run in submission order relative to other writes, and
// always run before any read submitted earlier but not yet applied.
func (s *Store[S]) SetState(f func(S) S) error {
	if !s.q.pushWrite(f) {
		return ErrClosed
	}
	return nil
}

// WithState enqueues a read of the current state once every write queued
// ahead of it has applied. It never blocks the caller.
func (s *Store[S]) WithState(f func(S)) error {
	if !s.q.pushRead(f) {
		return ErrClosed
	}
	return nil
}

// GetState returns the most recently published state; unlike SetState and
// WithState it does not go through the queue, so it can race ahead of
// pending writes.
func (s *Store[S]) GetState() S {
	v, _ := s.slot.snapshot()
	return v
}

// AwaitState enqueues a read and blocks until it has run (or ctx is done,
// or the store closes), returning the state observed at that point.
func (s *Store[S]) AwaitState(ctx context.Context) (S, error) {
	result := make(chan S, 1)
	err := s.WithState(func(v S) {
		select {
		case result <- v:
		default:
		}
	})
	if err != nil {
		var zero S
		return zero, err
	}
	select {
	case v := <-result:
		return v, nil
	case <-ctx.Done():
		var zero S
		return zero, ctx.Err()
	case <-s.done:
		var zero S
		return zero, ErrClosed
	}
}

// Handle returns a new reference-counted handle to s. The count also
// includes the reference NewStore accounts for, which no handle releases,
// so closing handles alone does not shut the worker down; Store.Close does.
func (s *Store[S]) Handle() *Handle[S] {
	s.refs.Add(1)
	return &Handle[S]{store: s}
}

// Handle is a reference-counted reference to a Store. Closing a handle
// decrements the count; the queue is closed if the count reaches zero,
// which does not happen while the reference NewStore accounts for is
// held, since Store.Close shuts the store down without decrementing it.
type Handle[S any] struct {
	store  *Store[S]
	closed atomic.Bool
}

// Store returns the underlying Store this handle refers to.
func (h *Handle[S]) Store() *Store[S] { return h.store }

// Close releases this handle; closing it again has no effect. It closes
// the store's queue only if the reference count reaches zero.
func (h *Handle[S]) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	if h.store.refs.Add(-1) == 0 {
		h.store.q.close()
	}
}

// Close shuts the store down unconditionally, regardless of outstanding
// handles. Intended for the owner that called NewStore, typically paired
// with defer.
func (s *Store[S]) Close() {
	s.q.close()
}
