package ops_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/coll/dt"
	"github.com/tychoish/coll/dt/cmp"
	"github.com/tychoish/coll/ers"
	"github.com/tychoish/coll/ops"
)

type Counter struct{ DayIndex int }

func (c Counter) Plus(o Counter) Counter { return Counter{c.DayIndex + o.DayIndex} }

type Clock struct{ at time.Time }

func (c Clock) Plus(d time.Duration) Clock  { return Clock{c.at.Add(d)} }
func (c Clock) Minus(d time.Duration) Clock { return Clock{c.at.Add(-d)} }

type Point struct{ X, Y int }

func (p Point) Neg() Point { return Point{-p.X, -p.Y} }
func (p Point) Inc() Point { return Point{p.X + 1, p.Y + 1} }

type Company struct{ Name string }

func (c Company) Contains(user string) bool { return c.Name == user }

type User struct {
	Active bool
	Name   string
}

func (u User) Equal(o User) bool { return u.Name == o.Name }

type Users struct{ users []User }

func (u *Users) Get(idx int) (User, error) { return ops.SliceGet(u.users, idx) }

func (u *Users) Set(idx int, user User) error { return ops.SliceSet(u.users, idx, user) }

type UsersByName struct{ *Users }

func (u UsersByName) Get(name string) (User, error) {
	idx := slices.IndexFunc(u.users, func(o User) bool { return o.Name == name })
	if idx < 0 {
		return User{}, ers.Wrapf(ers.ErrKeyNotFound, "user %q", name)
	}
	return u.users[idx], nil
}

type broken struct{}

func (broken) Get(int) (string, error) { return "", errors.New("backend down") }

func TestOperators(t *testing.T) {
	t.Run("Plus", func(t *testing.T) {
		assert.Equal(t, Counter{30}, ops.Plus(Counter{10}, Counter{20}))

		start := Clock{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		later := ops.Plus(start, time.Hour)
		assert.Equal(t, 1, later.at.Hour())
		assert.Equal(t, start, ops.Minus(later, time.Hour))
	})
	t.Run("Unary", func(t *testing.T) {
		assert.Equal(t, Point{-10, -20}, ops.Neg(Point{10, 20}))
		assert.Equal(t, Point{11, 21}, ops.Inc(Point{10, 20}))
	})
	t.Run("Contains", func(t *testing.T) {
		company := Company{"rama"}
		assert.False(t, ops.Contains[string](company, "sasimi"))
		assert.True(t, ops.Contains[string](company, "rama"))

		r := dt.NewRange(1, 10)
		assert.True(t, ops.Contains[int](r, 4))
		assert.False(t, ops.Contains[int](r, 11))
	})
	t.Run("Index", func(t *testing.T) {
		users := &Users{users: []User{{true, "rama"}, {true, "sasimi"}}}

		second, err := ops.Get[int, User](users, 1)
		require.NoError(t, err)
		assert.Equal(t, "sasimi", second.Name)

		_, err = ops.Get[int, User](users, 2)
		assert.ErrorIs(t, err, ers.ErrIndexOutOfRange)

		byName, err := ops.Get[string, User](UsersByName{users}, "sasimi")
		require.NoError(t, err)
		assert.Equal(t, second, byName)

		_, err = ops.Get[string, User](UsersByName{users}, "nobody")
		assert.ErrorIs(t, err, ers.ErrKeyNotFound)

		require.NoError(t, ops.Set[int, User](users, 0, User{false, "kim"}))
		first, err := users.Get(0)
		require.NoError(t, err)
		assert.Equal(t, "kim", first.Name)

		assert.ErrorIs(t, ops.Set[int, User](users, -1, User{}), ers.ErrIndexOutOfRange)
	})
	t.Run("GetOptional", func(t *testing.T) {
		users := &Users{users: []User{{true, "rama"}}}

		found, err := ops.GetOptional[int, User](users, 0)
		require.NoError(t, err)
		assert.Equal(t, "rama", found.MustGet().Name)

		missing, err := ops.GetOptional[string, User](UsersByName{users}, "sasimi")
		require.NoError(t, err)
		assert.False(t, missing.Ok())

		name := dt.MapOptional(missing, func(u User) string { return u.Name }).OrElse("anonymous")
		assert.Equal(t, "anonymous", name)

		_, err = ops.GetOptional[int, string](broken{}, 0)
		assert.EqualError(t, err, "backend down")
	})
	t.Run("Map", func(t *testing.T) {
		ages := dt.NewMap(map[string]int{"rama": 30})
		age, err := ops.Get[string, int](ages, "rama")
		require.NoError(t, err)
		assert.Equal(t, 30, age)

		_, err = ops.Get[string, int](ages, "sasimi")
		assert.ErrorIs(t, err, ers.ErrKeyNotFound)

		opt, err := ops.GetOptional[string, int](ages, "sasimi")
		require.NoError(t, err)
		assert.Equal(t, 0, opt.OrElse(0))
	})
	t.Run("StrictMap", func(t *testing.T) {
		ages := ops.Strict(dt.NewMap(map[string]int{"rama": 30}))
		require.NoError(t, ops.Set[string, int](ages, "rama", 31))
		age, err := ops.Get[string, int](ages, "rama")
		require.NoError(t, err)
		assert.Equal(t, 31, age)

		assert.ErrorIs(t, ops.Set[string, int](ages, "sasimi", 1), ers.ErrKeyNotFound)
		assert.False(t, ages.Check("sasimi"))
		assert.Equal(t, 1, ages.Len())

		ages.Map.Set("sasimi", 1)
		require.NoError(t, ops.Set[string, int](ages, "sasimi", 2))
		assert.Equal(t, 2, ages.Map["sasimi"])
	})
	t.Run("Sum", func(t *testing.T) {
		assert.Equal(t, Counter{6}, ops.Sum(Counter{1}, Counter{2}, Counter{3}).MustGet())
		assert.False(t, ops.Sum[Counter]().Ok())
	})
}

func TestVector(t *testing.T) {
	t.Run("Capabilities", func(t *testing.T) {
		a := dt.NewVector(1, 2)
		b := dt.NewVector(3)
		c := ops.Plus(a, b)
		assert.Equal(t, []int{1, 2, 3}, c.Slice())
		assert.Equal(t, []int{1, 2}, a.Slice())

		v, err := ops.Get[int, int](c, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.ErrorIs(t, ops.Set[int, int](c, 3, 0), ers.ErrIndexOutOfRange)
	})
	t.Run("Assign", func(t *testing.T) {
		numbers := dt.NewVector(1, 2, 3, 4)
		ops.PlusAssign(numbers, 5, 6)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, numbers.Slice())

		assert.Equal(t, 2, ops.MinusAssign(numbers, 2, 4, 9))
		assert.Equal(t, []int{1, 3, 5, 6}, numbers.Slice())
		assert.True(t, ops.VectorContains(numbers, 5))
		assert.False(t, ops.VectorContains(numbers, 2))
	})
	t.Run("AssignFunc", func(t *testing.T) {
		users := dt.NewVector(User{true, "a"}, User{false, "b"}, User{true, "a"})
		removed := ops.MinusAssignFunc(users, cmp.EqualCustom[User], User{Name: "a"})
		assert.Equal(t, 1, removed)
		assert.Equal(t, 2, users.Len())
	})
	t.Run("ContainsEquality", func(t *testing.T) {
		users := dt.NewVector(User{true, "a"}, User{false, "b"})
		assert.True(t, ops.VectorContainsCustom(users, User{false, "a"}))
		assert.False(t, ops.VectorContains(users, User{false, "a"}))
		assert.True(t, ops.VectorContains(users, User{true, "a"}))
		assert.False(t, ops.VectorContainsCustom(users, User{Name: "c"}))

		byActive := func(a, b User) bool { return a.Active == b.Active }
		assert.True(t, ops.VectorContainsFunc(users, User{Active: false, Name: "z"}, byActive))

		var nilvec *dt.Vector[User]
		assert.False(t, ops.VectorContainsCustom(nilvec, User{Name: "a"}))
	})
}

func TestSlices(t *testing.T) {
	t.Run("Plus", func(t *testing.T) {
		a := []int{1, 2}
		out := ops.SlicePlus(a, []int{3})
		assert.Equal(t, []int{1, 2, 3}, out)
		out[0] = 100
		assert.Equal(t, 1, a[0])
		assert.Empty(t, ops.SlicePlus[int](nil, nil))
	})
	t.Run("MinusFirstOccurrence", func(t *testing.T) {
		assert.Equal(t, []int{2, 1, 3}, ops.SliceMinus([]int{1, 2, 1, 3}, []int{1}))
		assert.Equal(t, []int{3}, ops.SliceMinus([]int{1, 2, 1, 3}, []int{1, 1, 2}))
		assert.Equal(t, []int{1, 2}, ops.SliceMinus([]int{1, 2}, []int{5}))
		assert.Equal(t, []int{}, ops.SliceMinus([]int{1}, []int{1, 1}))
		assert.Equal(t, []int{}, ops.SliceMinus(nil, []int{1}))

		in := []string{"x", "y"}
		_ = ops.SliceMinus(in, []string{"x"})
		assert.Equal(t, []string{"x", "y"}, in)
	})
	t.Run("MinusCustom", func(t *testing.T) {
		users := []User{{true, "a"}, {true, "b"}, {false, "a"}}
		out := ops.SliceMinusCustom(users, []User{{Name: "a"}})
		assert.Equal(t, []User{{true, "b"}, {false, "a"}}, out)
	})
	t.Run("Contains", func(t *testing.T) {
		assert.True(t, ops.SliceContains([]string{"a", "b"}, "b"))
		assert.False(t, ops.SliceContains([]string{}, "b"))
		assert.True(t, ops.SliceContainsCustom([]User{{true, "a"}}, User{false, "a"}))

		same := func(a, b float64) bool { return a-b < 0.01 && b-a < 0.01 }
		assert.True(t, ops.SliceContainsFunc([]float64{1.0, 2.0}, 2.001, same))
	})
	t.Run("Index", func(t *testing.T) {
		s := []string{"a", "b"}
		v, err := ops.SliceGet(s, 1)
		require.NoError(t, err)
		assert.Equal(t, "b", v)

		_, err = ops.SliceGet(s, 2)
		assert.ErrorIs(t, err, ers.ErrIndexOutOfRange)

		require.NoError(t, ops.SliceSet(s, 0, "z"))
		assert.Equal(t, []string{"z", "b"}, s)
		assert.ErrorIs(t, ops.SliceSet(s, -1, "q"), ers.ErrIndexOutOfRange)
	})
}

type DateTime struct {
	millis int64
	zone   string
	str    dt.Memo[string]
}

func (d *DateTime) Equal(o *DateTime) bool { return d.millis == o.millis && d.zone == o.zone }

func (d *DateTime) Shift(ms int64) { d.millis += ms; d.str.Invalidate() }

func (d *DateTime) String() string {
	return d.str.Call(func() string {
		return fmt.Sprint(time.UnixMilli(d.millis).UTC().Format(time.RFC3339), " ", d.zone)
	})
}

func TestValueSemantics(t *testing.T) {
	t.Run("Equality", func(t *testing.T) {
		a := &DateTime{millis: 1000, zone: "UTC"}
		b := &DateTime{millis: 1000, zone: "UTC"}
		assert.NotSame(t, a, b)
		assert.True(t, a.Equal(b))
		assert.True(t, ops.SliceContainsCustom([]*DateTime{a}, b))

		b.Shift(1)
		assert.False(t, a.Equal(b))
	})
	t.Run("CachedString", func(t *testing.T) {
		d := &DateTime{zone: "UTC"}
		assert.False(t, d.str.Valid())
		assert.Equal(t, "1970-01-01T00:00:00Z UTC", d.String())
		assert.True(t, d.str.Valid())

		d.Shift(int64(time.Hour / time.Millisecond))
		assert.False(t, d.str.Valid())
		assert.Equal(t, "1970-01-01T01:00:00Z UTC", d.String())
	})
}
