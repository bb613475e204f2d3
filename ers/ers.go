package ers

import (
	"errors"
	"fmt"
)

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Ok returns true when the error is nil.
func Ok(err error) bool { return err == nil }

// Wrap annotates an error with a message, preserving the error for
// errors.Is. Nil errors are not wrapped.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}
	return err
}

// Whenf wraps the error with the formatted message IF the conditional
// is true, and returns nil otherwise.
func Whenf(cond bool, err error, tmpl string, args ...any) error {
	if !cond {
		return nil
	}
	return Wrapf(err, tmpl, args...)
}
