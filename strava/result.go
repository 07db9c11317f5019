package strava

import "context"

// Result is the outcome of a dispatched request: exactly one of a decoded
// value or an error.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a decoded value.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure wraps an error. A nil error is replaced so that a Failure never
// reads as a Success.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = &Error{Kind: KindTransport, Message: "unknown failure"}
	}
	return Result[T]{err: err}
}

// Ok reports whether the result is a Success.
func (r Result[T]) Ok() bool {
	return r.err == nil
}

// Value returns the decoded value; the zero value on Failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, nil on Success.
func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into Go's usual (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Async runs fn on its own goroutine and hands the outcome to done. done is
// called exactly once and never on the caller's goroutine.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error), done func(Result[T])) {
	go func() {
		v, err := fn(ctx)
		if err != nil {
			done(Failure[T](err))
			return
		}
		done(Success(v))
	}()
}
