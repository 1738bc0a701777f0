package rxstate

import (
	"context"
	"errors"
)

func isContextCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func isContextDeadlineExceeded(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// liftResult turns the standard Go (T, error) shape into an AsyncT[T]: a
// nil error lifts to Success, a non-nil error lifts to Failure, recognizing
// context cancellation/deadline errors and pre-built ErrorKind values
// rather than flattening everything into KindMessage.
func liftResult[T any](value T, err error) AsyncT[T] {
	if err == nil {
		return Success(value)
	}
	return Failure[T](toErrorKind(err))
}

// FromOptional turns a (T, ok bool) pair into an AsyncT[T]: ok lifts to
// Success, !ok lifts to a KindEmpty Failure. This is the Go shape of
// Option<T> reaching an outcome lift, for computations more naturally
// expressed as "value, found" than as an error.
func FromOptional[T any](value T, ok bool) AsyncT[T] {
	if ok {
		return Success(value)
	}
	return Failure[T](NewEmptyError())
}

func toErrorKind(err error) ErrorKind {
	if err == nil {
		return ErrorKind{}
	}
	if ek, ok := err.(ErrorKind); ok {
		return ek
	}
	switch {
	case isContextCancelled(err):
		return NewCancelledError()
	case isContextDeadlineExceeded(err):
		return NewTimeoutError()
	default:
		return NewMessageError(err.Error())
	}
}
