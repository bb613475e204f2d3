// Package check mirrors the assertions in the assert package, but
// failures are reported without aborting the test.
package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tychoish/coll/ers"
)

// Puller is anything with the pull shape of a sequence source.
type Puller[T any] interface{ Pull() (T, bool) }

// Pulls pulls one value from the source for each expected value, and
// fails if the source ends early or a value differs. Pulling stops at
// the first failure.
func Pulls[T any](t testing.TB, src Puller[T], want ...T) {
	t.Helper()
	pulls(t, src, want)
}

func pulls[T any](t testing.TB, src Puller[T], want []T) bool {
	t.Helper()
	for idx, exp := range want {
		v, ok := src.Pull()
		if !assert.Truef(t, ok, "source ended at pull %d of %d", idx+1, len(want)) ||
			!assert.Equalf(t, exp, v, "pull %d", idx+1) {
			return false
		}
	}
	return true
}

// Exhausted fails unless the source is at its end and stays there for
// the pull after.
func Exhausted[T any](t testing.TB, src Puller[T]) {
	t.Helper()
	for idx := range 2 {
		v, ok := src.Pull()
		if !assert.Falsef(t, ok, "source produced <%v> on pull %d past its end", v, idx+1) {
			return
		}
	}
}

// Drains fails unless the source produces exactly the expected values
// and then ends.
func Drains[T any](t testing.TB, src Puller[T], want ...T) {
	t.Helper()
	if pulls(t, src, want) {
		Exhausted(t, src)
	}
}

// PanicsIs fails unless the function panics with an error matching
// the target.
func PanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()
	err := recovered(fn)
	if assert.Errorf(t, err, "expected a panic matching <%v>", target) {
		assert.ErrorIs(t, err, target)
	}
}

func recovered(fn func()) (err error) {
	defer func() { err = ers.ParsePanic(recover()) }()
	fn()
	return nil
}
