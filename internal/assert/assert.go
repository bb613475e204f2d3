// Package assert holds the assertions that the tests of this module
// share beyond what testify provides: pull-source draining, sticky
// ends, and error-kind panics. All assertions are "fatal" and abort
// the test at the failure line. The check package has the same
// assertions, and lets the test continue on failure.
package assert

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tychoish/coll/ers"
)

// Puller is anything with the pull shape of a sequence source.
type Puller[T any] interface{ Pull() (T, bool) }

// Pulls pulls one value from the source for each expected value, and
// fails if the source ends early or a value differs.
func Pulls[T any](t testing.TB, src Puller[T], want ...T) {
	t.Helper()
	for idx, exp := range want {
		v, ok := src.Pull()
		require.Truef(t, ok, "source ended at pull %d of %d", idx+1, len(want))
		require.Equalf(t, exp, v, "pull %d", idx+1)
	}
}

// Exhausted fails unless the source is at its end and stays there for
// the pull after.
func Exhausted[T any](t testing.TB, src Puller[T]) {
	t.Helper()
	for idx := range 2 {
		v, ok := src.Pull()
		require.Falsef(t, ok, "source produced <%v> on pull %d past its end", v, idx+1)
	}
}

// Drains fails unless the source produces exactly the expected values
// and then ends.
func Drains[T any](t testing.TB, src Puller[T], want ...T) {
	t.Helper()
	Pulls(t, src, want...)
	Exhausted(t, src)
}

// PanicsIs fails unless the function panics with an error matching
// the target, as ers.Invariant and the container guards do.
func PanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()
	err := recovered(fn)
	require.Errorf(t, err, "expected a panic matching <%v>", target)
	require.ErrorIs(t, err, target)
}

func recovered(fn func()) (err error) {
	defer func() { err = ers.ParsePanic(recover()) }()
	fn()
	return nil
}

// Failing runs the test function against a recording testing.TB, and
// fails if the function did not report a failure. Use it to test
// assertions.
func Failing(t testing.TB, test func(testing.TB)) {
	t.Helper()
	rec := &recorder{TB: t}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		test(rec)
	}()
	wg.Wait()

	if !rec.failed {
		t.Fatalf("expected test to fail in %s", t.Name())
	}
}

type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()               {}
func (r *recorder) Fail()                 { r.failed = true }
func (r *recorder) Failed() bool          { return r.failed }
func (r *recorder) FailNow()              { r.failed = true; runtime.Goexit() }
func (r *recorder) Error(...any)          { r.Fail() }
func (r *recorder) Errorf(string, ...any) { r.Fail() }
func (r *recorder) Fatal(...any)          { r.FailNow() }
func (r *recorder) Fatalf(string, ...any) { r.FailNow() }
