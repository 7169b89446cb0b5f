// Package optional provides an explicit presence/absence wrapper for values
// that may be missing, such as a document title or a search bound.
package optional

// Value holds either a T or nothing. The zero Value is absent.
type Value[T any] struct {
	value   T
	present bool
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) { return v.value, v.present }

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool { return v.present }

// OrElse returns the held value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if v.present {
		return v.value
	}
	return fallback
}

// Map applies fn to the held value. Absent stays absent.
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	if !v.present {
		return None[U]()
	}
	return Of(fn(v.value))
}
