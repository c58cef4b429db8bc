// Package envelope defines the Xomware standard API response envelope.
//
// Every HTTP API response body is wrapped in this shape before it leaves a
// handler:
//
//	Success: {"success": true, "data": <payload>}
//	Failure: {"success": false, "error": "<message>"}
//
// The envelope itself never fails: errors are payload carried inside a
// failure-shaped envelope, not faults raised by it.
package envelope

import "encoding/json"

// Envelope is the canonical untyped form. Data is any payload the caller
// supplies; a nil Data or nil Error is the absent sentinel and is omitted
// from the serialized form.
//
// The type does not enforce mutual exclusivity of Data and Error. OK and
// Fail establish the convention; direct construction of an inconsistent
// value is permitted and serialized as-is.
type Envelope struct {
	Success bool
	Data    any
	Error   *string
}

// OK builds a successful envelope around the provided payload. A nil payload
// is accepted and serializes to {"success": true} with no data key.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failure envelope carrying the provided message. An empty
// message is not the absent sentinel: the error key stays present.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: &message}
}

// IsSuccess reports whether the success flag is set.
func (e Envelope) IsSuccess() bool {
	return e.Success
}

// IsError reports whether the success flag is unset.
func (e Envelope) IsError() bool {
	return !e.Success
}

// ToMap projects the envelope into its mapping form. The success key is
// always present; data and error appear only when their stored value is not
// the absent sentinel. The projection is pure and never mutates the receiver.
func (e Envelope) ToMap() map[string]any {
	out := map[string]any{"success": e.Success}
	if e.Data != nil {
		out["data"] = e.Data
	}
	if e.Error != nil {
		out["error"] = *e.Error
	}
	return out
}

// MarshalJSON serializes through ToMap so the wire shape and the mapping
// form always agree.
func (e Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToMap())
}

// UnmarshalJSON reconstructs an envelope from its wire form. A data key
// holding JSON null collapses to the absent sentinel; Go's map form cannot
// distinguish the two.
func (e *Envelope) UnmarshalJSON(payload []byte) error {
	var raw struct {
		Success bool    `json:"success"`
		Data    any     `json:"data"`
		Error   *string `json:"error"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return err
	}
	e.Success = raw.Success
	e.Data = raw.Data
	e.Error = raw.Error
	return nil
}

// Decode parses a serialized envelope.
func Decode(payload []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(payload, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// Typed is the statically typed form for handlers that know their payload
// type. The pointer fields plus omitempty implement the same compaction rule
// under plain encoding/json marshaling.
type Typed[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// OKTyped builds a successful typed envelope.
func OKTyped[T any](data T) Typed[T] {
	return Typed[T]{Success: true, Data: &data}
}

// FailTyped builds a failure typed envelope.
func FailTyped[T any](message string) Typed[T] {
	return Typed[T]{Success: false, Error: &message}
}

// IsSuccess reports whether the success flag is set.
func (t Typed[T]) IsSuccess() bool {
	return t.Success
}

// IsError reports whether the success flag is unset.
func (t Typed[T]) IsError() bool {
	return !t.Success
}

// Untyped converts to the canonical form.
func (t Typed[T]) Untyped() Envelope {
	e := Envelope{Success: t.Success, Error: t.Error}
	if t.Data != nil {
		e.Data = *t.Data
	}
	return e
}
