// Package opt provides functional options: functions that modify a
// configuration value and may fail, and which are validated together
// once they have all been applied.
package opt

import (
	"errors"

	"github.com/tychoish/coll/ers"
)

// Provider is a function type for building functional arguments. The
// type T should always be mutable (e.g. a map, or a pointer).
type Provider[T any] func(T) error

// New constructs a new Provider, essentially for type casting purposes.
func New[T any](in func(T) error) Provider[T] { return in }

// Join takes zero or more providers and produces a single combined
// provider. With zero or nil arguments, the operation becomes a noop.
func Join[T any](op ...Provider[T]) Provider[T] {
	var noop Provider[T] = func(T) error { return nil }
	if len(op) == 0 {
		return noop
	}
	return noop.Join(op...)
}

// Apply applies the current Provider to the configuration, and if the
// type T implements a Validate() method, calls that. All errors are
// aggregated, and panics in providers are converted to errors.
func (op Provider[T]) Apply(in T) (err error) {
	defer func() { err = errors.Join(err, ers.ParsePanic(recover())) }()

	err = op(in)

	if validator, ok := any(in).(interface{ Validate() error }); ok {
		return errors.Join(err, validator.Validate())
	}
	return err
}

// Build processes a configuration object, returning a modified
// version (or a zero value, in the case of an error).
func (op Provider[T]) Build(conf T) (out T, err error) {
	if err = op.Apply(conf); err != nil {
		return out, err
	}
	return conf, nil
}

// Join aggregates a collection of Providers into a single provider,
// applied in order. Nil providers are skipped.
func (op Provider[T]) Join(ops ...Provider[T]) Provider[T] {
	return func(conf T) error {
		var errs []error
		for _, fn := range append([]Provider[T]{op}, ops...) {
			if fn == nil {
				continue
			}
			errs = append(errs, fn(conf))
		}
		return errors.Join(errs...)
	}
}
