package ers

// ErrEmptyInput is returned by reductions that have no meaningful
// result for an empty input, (e.g. Reduce and Average.)
const ErrEmptyInput Error = Error("empty input")

// ErrInvalidArgument indicates a malformed argument: a non-positive
// chunk size, a negative take/drop count, or a range with a zero
// step.
const ErrInvalidArgument Error = Error("invalid argument")

// ErrIndexOutOfRange is returned for positional access outside of
// the bounds of a container.
const ErrIndexOutOfRange Error = Error("index out of range")

// ErrKeyNotFound is returned for keyed access to a key that is not
// present.
const ErrKeyNotFound Error = Error("key not found")

// ErrIllegalState is returned when an operation is not valid in the
// current state of an object, as when removing through a cursor that
// has not yet returned an element.
const ErrIllegalState Error = Error("illegal state")

// ErrConcurrentModification is returned by a cursor when its
// container was structurally modified by something other than the
// cursor itself.
const ErrConcurrentModification Error = Error("concurrent modification")

// ErrInvariantViolation is the root error of the panics raised for
// programmer errors, such as nil functions.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error returned by Safe
// when the wrapped function panics.
const ErrRecoveredPanic Error = Error("recovered panic")
