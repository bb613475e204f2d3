package dt

import (
	"fmt"
	"math"

	"github.com/tychoish/coll/ers"
)

// Range is an inclusive progression of integers, with a non-zero
// step. Ascending ranges whose end is before their start, (and
// descending ranges whose end is after their start,) are empty.
//
// The zero value is the single-element range [0].
type Range struct {
	start int
	end   int
	step  int
}

// NewRange constructs the ascending range start..end with a step of 1.
func NewRange(start, end int) Range { return Range{start: start, end: end, step: 1} }

// DownTo constructs the descending range from start to end with a
// step of -1.
func DownTo(start, end int) Range { return Range{start: start, end: end, step: -1} }

// MakeRange constructs a range with an explicit step; a negative
// step produces a descending range. Zero steps are an
// ErrInvalidArgument.
func MakeRange(start, end, step int) (Range, error) {
	if step == 0 {
		return Range{}, ers.Wrapf(ers.ErrInvalidArgument, "range %d..%d has a zero step", start, end)
	}
	r := Range{start: start, end: end, step: step}
	return r, r.Check()
}

func (r Range) direction() int {
	if r.step < 0 {
		return -1
	}
	return 1
}

// Step returns a copy of the range with the step magnitude set to n,
// keeping the direction. The step must be positive.
func (r Range) Step(n int) (Range, error) {
	if n <= 0 {
		return Range{}, ers.Wrapf(ers.ErrInvalidArgument, "step %d must be positive", n)
	}
	r.step = n * r.direction()
	return r, r.Check()
}

// Start returns the first value of the range. For empty ranges this
// is not a member.
func (r Range) Start() int { return r.start }

// Increment returns the signed step of the range.
func (r Range) Increment() int {
	if r.step == 0 {
		return 1
	}
	return r.step
}

// span returns the position of the last member of the range, and
// false for empty ranges. The arithmetic is unsigned so that ranges
// reaching the ends of the int domain are measured correctly.
func (r Range) span() (uint, bool) {
	step := r.Increment()
	switch {
	case step > 0 && r.start <= r.end:
		return (uint(r.end) - uint(r.start)) / uint(step), true
	case step < 0 && r.start >= r.end:
		return (uint(r.start) - uint(r.end)) / uint(-step), true
	default:
		return 0, false
	}
}

// Check returns an ErrInvalidArgument when the range has more
// members than an int can count.
func (r Range) Check() error {
	last, ok := r.span()
	return ers.Whenf(ok && last >= uint(math.MaxInt), ers.ErrInvalidArgument, "range %s has too many members", r)
}

// Len returns the number of values in the range. Ranges that fail
// Check report math.MaxInt.
func (r Range) Len() int {
	last, ok := r.span()
	switch {
	case !ok:
		return 0
	case last >= uint(math.MaxInt):
		return math.MaxInt
	default:
		return int(last) + 1
	}
}

// IsEmpty reports whether the range has no values.
func (r Range) IsEmpty() bool { _, ok := r.span(); return !ok }

func (r Range) at(idx uint) int { return r.start + int(idx)*r.Increment() }

// Last returns the final value of the range, which is not always the
// end when the step does not divide the span.
func (r Range) Last() Optional[int] {
	last, ok := r.span()
	if !ok {
		return None[int]()
	}
	return NewOptional(r.at(last))
}

// Get returns the value at position idx, and an ErrIndexOutOfRange
// error when idx is outside the range.
func (r Range) Get(idx int) (int, error) {
	last, ok := r.span()
	if !ok || idx < 0 || uint(idx) > last {
		return 0, ers.Wrapf(ers.ErrIndexOutOfRange, "index %d for range %s", idx, r)
	}
	return r.at(uint(idx)), nil
}

// Contains reports whether the value is a member of the range,
// accounting for the step.
func (r Range) Contains(v int) bool {
	step := r.Increment()
	switch {
	case r.IsEmpty():
		return false
	case step > 0:
		return v >= r.start && v <= r.end && (uint(v)-uint(r.start))%uint(step) == 0
	default:
		return v <= r.start && v >= r.end && (uint(r.start)-uint(v))%uint(-step) == 0
	}
}

// Values materializes the members of the range. Ranges that fail
// Check return its error.
func (r Range) Values() ([]int, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	out := make([]int, r.Len())
	for idx := range out {
		out[idx] = r.at(uint(idx))
	}
	return out, nil
}

// Each calls the function with each member of the range in order,
// until the function returns false. Each works on ranges of any
// size.
func (r Range) Each(fn func(int) bool) {
	last, ok := r.span()
	if !ok {
		return
	}
	for idx := uint(0); ; idx++ {
		if !fn(r.at(idx)) || idx == last {
			return
		}
	}
}

func (r Range) String() string {
	step := r.Increment()
	switch {
	case step == 1:
		return fmt.Sprintf("%d..%d", r.start, r.end)
	case step == -1:
		return fmt.Sprintf("%d downTo %d", r.start, r.end)
	case step > 0:
		return fmt.Sprintf("%d..%d step %d", r.start, r.end, step)
	default:
		return fmt.Sprintf("%d downTo %d step %d", r.start, r.end, -step)
	}
}
