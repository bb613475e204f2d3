package opt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/coll/ers"
)

type conf struct {
	size  int
	name  string
	calls int
}

func (c *conf) Validate() error {
	c.calls++
	return ers.Whenf(c.size <= 0, ers.ErrInvalidArgument, "size %d", c.size)
}

func TestProvider(t *testing.T) {
	size := func(n int) Provider[*conf] { return func(c *conf) error { c.size = n; return nil } }
	name := func(s string) Provider[*conf] { return func(c *conf) error { c.name = s; return nil } }

	t.Run("Build", func(t *testing.T) {
		out, err := Join(size(4), nil, name("four")).Build(&conf{})
		require.NoError(t, err)
		assert.Equal(t, 4, out.size)
		assert.Equal(t, "four", out.name)
		assert.Equal(t, 1, out.calls)
	})
	t.Run("Order", func(t *testing.T) {
		out, err := Join(size(4), size(8)).Build(&conf{})
		require.NoError(t, err)
		assert.Equal(t, 8, out.size)
	})
	t.Run("Validation", func(t *testing.T) {
		out, err := Join(name("none")).Build(&conf{})
		assert.ErrorIs(t, err, ers.ErrInvalidArgument)
		assert.Nil(t, out)
	})
	t.Run("Errors", func(t *testing.T) {
		expected := errors.New("beep")
		err := New(func(*conf) error { return expected }).Join(size(1)).Apply(&conf{})
		assert.ErrorIs(t, err, expected)
	})
	t.Run("Panic", func(t *testing.T) {
		err := New(func(*conf) error { panic("boop") }).Apply(&conf{size: 1})
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
	})
	t.Run("Empty", func(t *testing.T) {
		c := &conf{size: 1}
		require.NoError(t, Join[*conf]().Apply(c))
		assert.Equal(t, 1, c.calls)
	})
}
