package assert_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/internal/assert"
)

type counter struct{ n, limit int }

func (c *counter) Pull() (int, bool) {
	if c.n >= c.limit {
		return 0, false
	}
	c.n++
	return c.n, true
}

// flicker ends once, and then produces again.
type flicker struct{ pulls int }

func (f *flicker) Pull() (int, bool) { f.pulls++; return f.pulls, f.pulls != 1 }

func TestAssertion(t *testing.T) {
	kind := ers.Error("kind")

	t.Run("Passing", func(t *testing.T) {
		assert.Pulls(t, &counter{limit: 3}, 1, 2)
		assert.Drains(t, &counter{limit: 3}, 1, 2, 3)
		assert.Drains[int](t, &counter{})
		assert.Exhausted[int](t, &counter{})
		assert.PanicsIs(t, kind, func() { panic(fmt.Errorf("wrapped: %w", kind)) })
		assert.PanicsIs(t, ers.ErrInvariantViolation, func() { ers.Invariant(false, "broken") })
		assert.PanicsIs(t, ers.ErrRecoveredPanic, func() { panic("plain") })
	})
	t.Run("Failures", func(t *testing.T) {
		assert.Failing(t, func(t testing.TB) { assert.Failing(t, func(testing.TB) {}) })
		assert.Failing(t, func(t testing.TB) { assert.Pulls(t, &counter{limit: 1}, 1, 2) })
		assert.Failing(t, func(t testing.TB) { assert.Pulls(t, &counter{limit: 3}, 2) })
		assert.Failing(t, func(t testing.TB) { assert.Drains(t, &counter{limit: 3}, 1, 2) })
		assert.Failing(t, func(t testing.TB) { assert.Exhausted[int](t, &counter{limit: 1}) })
		assert.Failing(t, func(t testing.TB) { assert.Exhausted[int](t, &flicker{}) })
		assert.Failing(t, func(t testing.TB) { assert.PanicsIs(t, kind, func() {}) })
		assert.Failing(t, func(t testing.TB) { assert.PanicsIs(t, kind, func() { panic(errors.New("other")) }) })
	})
	t.Run("FatalStopsTest", func(t *testing.T) {
		reached := false
		assert.Failing(t, func(t testing.TB) {
			assert.Pulls(t, &counter{}, 1)
			reached = true
		})
		if reached {
			t.Error("fatal assertion did not stop the test")
		}
	})
}
