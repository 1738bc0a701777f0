package rxstate

import (
	"encoding/json"
	"testing"
)

func TestAsyncT_jsonRoundTrip(t *testing.T) {
	cases := []AsyncT[int]{
		Uninitialized[int](),
		Loading[int](),
		Loading(4),
		Success(9),
		Failure[int](NewMessageError("bad")),
		Failure(NewCancelledError(), 4),
	}
	for _, want := range cases {
		data, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("Marshal(%+v): %v", want, err)
		}
		var got AsyncT[int]
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got.kind != want.kind {
			t.Fatalf("round trip kind = %v, want %v (json: %s)", got.kind, want.kind, data)
		}
	}
}

func TestAsyncT_jsonShape(t *testing.T) {
	data, err := json.Marshal(Success(7))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["Success"]; !ok {
		t.Fatalf("expected top-level Success key, got %s", data)
	}
}

func TestErrorKind_jsonRoundTrip(t *testing.T) {
	cases := []ErrorKind{
		NewCancelledError(),
		NewTimeoutError(),
		NewEmptyError(),
		NewMessageError("connection refused"),
	}
	for _, want := range cases {
		data, err := json.Marshal(want)
		if err != nil {
			t.Fatal(err)
		}
		var got ErrorKind
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if got.Kind() != want.Kind() || got.Message() != want.Message() {
			t.Fatalf("round trip = %+v, want %+v", got, want)
		}
	}
}
