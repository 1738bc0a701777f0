package rxstate

import (
	"errors"
	"testing"
)

func TestMock_recordsHistory(t *testing.T) {
	m := NewMock(counter{})

	_ = m.SetState(func(c counter) counter { c.n = 1; return c })
	_ = m.SetState(func(c counter) counter { c.n = 2; return c })

	if got := m.GetState().n; got != 2 {
		t.Fatalf("GetState().n = %d, want 2", got)
	}
	if m.UpdateCount() != 2 {
		t.Fatalf("UpdateCount() = %d, want 2", m.UpdateCount())
	}
	hist := m.History()
	if hist[0].New.n != 1 || hist[1].Old.n != 1 || hist[1].New.n != 2 {
		t.Fatalf("History() = %+v", hist)
	}
}

func TestMock_withStateSeesCurrent(t *testing.T) {
	m := NewMock(counter{n: 5})
	var seen int
	_ = m.WithState(func(c counter) { seen = c.n })
	if seen != 5 {
		t.Fatalf("seen = %d, want 5", seen)
	}
}

func TestMockExecute_foldsOutcomeSynchronously(t *testing.T) {
	m := NewMock(profile{})

	MockExecute(m, nameInto, func() (string, error) { return "ada", nil })
	got := m.GetState().name
	if v, ok := got.Value(); !ok || v != "ada" {
		t.Fatalf("value = %v, %v, want ada, true", v, ok)
	}

	MockExecute(m, nameInto, func() (string, error) { return "", errors.New("boom") })
	got = m.GetState().name
	if !got.IsFailure() {
		t.Fatalf("got %+v, want Failure", got)
	}
}
