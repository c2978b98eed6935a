package domain

// Outcome is the two-variant result of every adapter operation: either a
// mapped value or a typed Error. Exactly one Outcome is produced per
// completed exchange, and it is the only value that crosses back to the
// caller.
type Outcome[T any] struct {
	Value T
	Err   *Error
}

// Success wraps a mapped value in a successful Outcome.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value}
}

// Failure wraps a typed error in a failed Outcome.
func Failure[T any](err *Error) Outcome[T] {
	return Outcome[T]{Err: err}
}

// Ok reports whether the outcome carries a value.
func (o Outcome[T]) Ok() bool {
	return o.Err == nil
}

// Get returns the value and the error as a conventional Go pair.
// On failure the returned error is the *Error carried by the outcome.
func (o Outcome[T]) Get() (T, error) {
	if o.Err != nil {
		var zero T
		return zero, o.Err
	}
	return o.Value, nil
}
