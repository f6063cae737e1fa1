package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Observable holds a value and notifies subscribers synchronously whenever it
// is set. Subscribers run in subscription order on the goroutine that calls
// Set.
type Observable[T any] struct {
	value     T
	observers []func(T)
}

// NewObservable creates an observable holding v.
func NewObservable[T any](v T) *Observable[T] {
	return &Observable[T]{value: v}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	return o.value
}

// Set stores v and notifies every subscriber with it.
func (o *Observable[T]) Set(v T) {
	o.value = v
	for _, fn := range o.observers {
		fn(v)
	}
}

// Subscribe registers fn to be called on every Set.
func (o *Observable[T]) Subscribe(fn func(T)) {
	o.observers = append(o.observers, fn)
}

// UnmarshalTOML implements toml.Unmarshaler. Decoding stores the value
// without notifying subscribers.
func (o *Observable[T]) UnmarshalTOML(data any) error {
	v, ok := data.(T)
	if !ok {
		var zero T
		return fmt.Errorf("expected %T, got %T", zero, data)
	}
	o.value = v
	return nil
}

// MarshalTOML implements toml.Marshaler. The value must encode as an inline
// TOML value (string, number, bool, datetime or array); tables are rejected.
func (o *Observable[T]) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]T{"v": o.value}); err != nil {
		return nil, err
	}
	out, ok := bytes.CutPrefix(buf.Bytes(), []byte("v = "))
	if !ok {
		return nil, fmt.Errorf("%T does not encode as an inline TOML value", o.value)
	}
	return bytes.TrimSpace(out), nil
}
