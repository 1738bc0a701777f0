package rxstate

import (
	"errors"
	"testing"
)

func TestErrorKind_errorsIs(t *testing.T) {
	cases := []struct {
		kind   ErrorKind
		target error
		want   bool
	}{
		{NewCancelledError(), ErrCancelled, true},
		{NewCancelledError(), ErrTimeout, false},
		{NewTimeoutError(), ErrTimeout, true},
		{NewEmptyError(), ErrEmpty, true},
		{NewMessageError("boom"), ErrEmpty, false},
	}
	for _, c := range cases {
		if got := errors.Is(c.kind, c.target); got != c.want {
			t.Errorf("errors.Is(%v, %v) = %v, want %v", c.kind, c.target, got, c.want)
		}
	}
}

func TestErrorKind_messagePreserved(t *testing.T) {
	e := NewMessageError("connection refused")
	if !e.IsMessage() {
		t.Fatal("expected IsMessage")
	}
	if e.Message() != "connection refused" {
		t.Fatalf("Message() = %q", e.Message())
	}
	if e.Error() != "connection refused" {
		t.Fatalf("Error() = %q", e.Error())
	}
}

func TestErrorKind_predicates(t *testing.T) {
	if !NewCancelledError().IsCancelled() {
		t.Fatal("IsCancelled")
	}
	if !NewTimeoutError().IsTimeout() {
		t.Fatal("IsTimeout")
	}
	if !NewEmptyError().IsEmpty() {
		t.Fatal("IsEmpty")
	}
}
