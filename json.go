package rxstate

import (
	"encoding/json"
	"fmt"
)

type wireErrorKind struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON implements json.Marshaler for ErrorKind.
func (e ErrorKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireErrorKind{Kind: e.kind.String(), Message: e.msg})
}

// UnmarshalJSON implements json.Unmarshaler for ErrorKind.
func (e *ErrorKind) UnmarshalJSON(data []byte) error {
	var w wireErrorKind
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Kind {
	case "cancelled":
		*e = NewCancelledError()
	case "timeout":
		*e = NewTimeoutError()
	case "empty":
		*e = NewEmptyError()
	case "message":
		*e = NewMessageError(w.Message)
	default:
		return fmt.Errorf("rxstate: unknown error kind %q", w.Kind)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for AsyncT, encoding it as a
// single-key object naming the active state — {"Uninitialized":null},
// {"Loading":{"retained":…}}, {"Success":{"value":…}},
// {"Failure":{"error":…,"retained":…}} — matching the wire shape a
// consumer of the equivalent Rust enum would expect from serde's default
// external tagging.
func (a AsyncT[T]) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case lifecycleUninitialized:
		return json.Marshal(map[string]any{"Uninitialized": nil})
	case lifecycleLoading:
		payload := map[string]any{}
		if a.retained != nil {
			payload["retained"] = *a.retained
		}
		return json.Marshal(map[string]any{"Loading": payload})
	case lifecycleSuccess:
		return json.Marshal(map[string]any{"Success": map[string]any{"value": a.value}})
	case lifecycleFailure:
		payload := map[string]any{"error": a.err}
		if a.retained != nil {
			payload["retained"] = *a.retained
		}
		return json.Marshal(map[string]any{"Failure": payload})
	default:
		return nil, fmt.Errorf("rxstate: async value has no recognized state")
	}
}

type wireAsyncPayload[T any] struct {
	Retained *T        `json:"retained,omitempty"`
	Value    *T        `json:"value,omitempty"`
	Error    ErrorKind `json:"error"`
}

type wireAsync[T any] struct {
	Loading *wireAsyncPayload[T] `json:"Loading"`
	Success *wireAsyncPayload[T] `json:"Success"`
	Failure *wireAsyncPayload[T] `json:"Failure"`
}

// UnmarshalJSON implements json.Unmarshaler for AsyncT.
func (a *AsyncT[T]) UnmarshalJSON(data []byte) error {
	var w wireAsync[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Loading != nil:
		if w.Loading.Retained != nil {
			*a = Loading(*w.Loading.Retained)
		} else {
			*a = Loading[T]()
		}
	case w.Success != nil && w.Success.Value != nil:
		*a = Success(*w.Success.Value)
	case w.Failure != nil:
		if w.Failure.Retained != nil {
			*a = Failure(w.Failure.Error, *w.Failure.Retained)
		} else {
			*a = Failure[T](w.Failure.Error)
		}
	default:
		*a = Uninitialized[T]()
	}
	return nil
}
