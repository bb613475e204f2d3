package ers

import "fmt"

// ParsePanic converts a recovered panic value into an error rooted in
// ErrRecoveredPanic. If no panic is detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return fmt.Errorf("%w: %w", ErrRecoveredPanic, err)
	default:
		return fmt.Errorf("%w: %v", ErrRecoveredPanic, err)
	}
}

// Safe runs a function with a panic handler that converts the panic
// to an error.
func Safe[T any](fn func() T) (out T, err error) {
	defer func() { err = ParsePanic(recover()) }()
	out = fn()
	return
}

// Invariant panics with an ErrInvariantViolation-rooted error when
// the condition is false.
func Invariant(cond bool, msg string) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrInvariantViolation, msg))
	}
}
