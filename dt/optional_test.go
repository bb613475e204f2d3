package dt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/ers"
)

func TestOptional(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var opt dt.Optional[string]
		assert.False(t, opt.Ok())
		assert.Equal(t, "", opt.Resolve())
		out, ok := opt.Get()
		assert.False(t, ok)
		assert.Equal(t, "", out)
		assert.Equal(t, "None", opt.String())
	})
	t.Run("SetAndReset", func(t *testing.T) {
		opt := dt.NewOptional(400)
		assert.Equal(t, "Some(400)", opt.String())
		opt = opt.Set(100)
		assert.Equal(t, 100, opt.Resolve())
		opt = opt.Reset()
		assert.False(t, opt.Ok())
	})
	t.Run("Constructors", func(t *testing.T) {
		assert.True(t, dt.OptionalOf(1, true).Ok())
		assert.False(t, dt.OptionalOf(1, false).Ok())

		var ptr *string
		assert.False(t, dt.OptionalFromPtr(ptr).Ok())
		label := "Kotlin"
		assert.Equal(t, "Kotlin", dt.OptionalFromPtr(&label).Resolve())
	})
	t.Run("Elvis", func(t *testing.T) {
		length := func(o dt.Optional[string]) int {
			return dt.MapOptional(o, func(s string) int { return len(s) }).OrElse(-1)
		}
		assert.Equal(t, -1, length(dt.None[string]()))
		assert.Equal(t, 6, length(dt.NewOptional("Kotlin")))

		called := false
		assert.Equal(t, 3, dt.NewOptional(3).OrElseGet(func() int { called = true; return 4 }))
		assert.False(t, called)
		assert.Equal(t, 4, dt.None[int]().OrElseGet(func() int { called = true; return 4 }))
		assert.True(t, called)
	})
	t.Run("ShortCircuit", func(t *testing.T) {
		calls := 0
		parse := func(s string) dt.Optional[int] {
			calls++
			v, err := strconv.Atoi(s)
			return dt.OptionalOf(v, err == nil)
		}

		assert.False(t, dt.FlatMapOptional(dt.None[string](), parse).Ok())
		assert.Equal(t, 0, calls)
		assert.False(t, dt.FlatMapOptional(dt.NewOptional("x"), parse).Ok())
		assert.Equal(t, 42, dt.FlatMapOptional(dt.NewOptional("42"), parse).Resolve())
		assert.Equal(t, 2, calls)

		assert.True(t, dt.NewOptional(4).Filter(func(v int) bool { return v%2 == 0 }).Ok())
		assert.False(t, dt.NewOptional(3).Filter(func(v int) bool { return v%2 == 0 }).Ok())
		assert.False(t, dt.None[int]().Filter(func(int) bool { calls++; return true }).Ok())
		assert.Equal(t, 2, calls)
	})
	t.Run("IfPresent", func(t *testing.T) {
		var seen []int
		dt.NewOptional(1).IfPresent(func(v int) { seen = append(seen, v) })
		dt.None[int]().IfPresent(func(v int) { seen = append(seen, v) })
		assert.Equal(t, []int{1}, seen)
	})
	t.Run("MustGet", func(t *testing.T) {
		assert.Equal(t, 1, dt.NewOptional(1).MustGet())
		_, err := ers.Safe(func() int { return dt.None[int]().MustGet() })
		assert.ErrorIs(t, err, ers.ErrIllegalState)
	})
}
