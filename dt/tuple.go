package dt

import "fmt"

// Tuple holds two values of arbitrary types. Zip stages produce
// tuples.
type Tuple[A any, B any] struct {
	One A
	Two B
}

// MakeTuple constructs a tuple object. This is identical to using the
// literal constructor but may be more ergonomic as the compiler seems
// to be better at inferring types in function calls over literal
// constructors.
func MakeTuple[A any, B any](a A, b B) Tuple[A, B] { return Tuple[A, B]{One: a, Two: b} }

// Split returns both members of the tuple.
func (t Tuple[A, B]) Split() (A, B) { return t.One, t.Two }

func (t Tuple[A, B]) String() string { return fmt.Sprintf("(%v, %v)", t.One, t.Two) }
