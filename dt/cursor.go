package dt

import "github.com/tychoish/coll/ers"

// Cursor provides bidirectional traversal over a Vector, with in
// place removal and replacement. A cursor sits between elements: its
// position p is in [0, Len()], Next returns the element at p and
// advances, and Previous steps back and returns the element at the
// new position.
//
// The cursor does not own the vector. Structural changes made to the
// vector other than through this cursor invalidate it, and subsequent
// operations return ErrConcurrentModification. Several cursors may
// read the same vector, but once one of them adds or removes
// elements, the others are invalid.
type Cursor[T any] struct {
	vec  *Vector[T]
	pos  int
	last int
	mods int
}

func (c *Cursor[T]) check() error {
	if c.mods != c.vec.mods {
		return ers.Wrapf(ers.ErrConcurrentModification, "cursor at %d", c.pos)
	}
	return nil
}

func (c *Cursor[T]) sync() { c.mods = c.vec.mods }

// HasNext reports whether Next will return an element.
func (c *Cursor[T]) HasNext() bool { return c.pos < c.vec.Len() }

// HasPrevious reports whether Previous will return an element.
func (c *Cursor[T]) HasPrevious() bool { return c.pos > 0 }

// NextIndex returns the index of the element Next would return.
func (c *Cursor[T]) NextIndex() int { return c.pos }

// PreviousIndex returns the index of the element Previous would
// return; -1 at the beginning of the vector.
func (c *Cursor[T]) PreviousIndex() int { return c.pos - 1 }

// Next returns the element at the cursor and advances past it. At
// the end of the vector it returns ErrIndexOutOfRange.
func (c *Cursor[T]) Next() (out T, err error) {
	if err = c.check(); err != nil {
		return out, err
	}
	if !c.HasNext() {
		return out, ers.Wrapf(ers.ErrIndexOutOfRange, "no element after position %d", c.pos)
	}
	out = c.vec.items[c.pos]
	c.last = c.pos
	c.pos++
	return out, nil
}

// Previous moves the cursor back by one and returns the element it
// moved over. At the beginning of the vector it returns
// ErrIndexOutOfRange.
func (c *Cursor[T]) Previous() (out T, err error) {
	if err = c.check(); err != nil {
		return out, err
	}
	if !c.HasPrevious() {
		return out, ers.Wrap(ers.ErrIndexOutOfRange, "no element before the first position")
	}
	c.pos--
	c.last = c.pos
	return c.vec.items[c.pos], nil
}

// Remove deletes the element most recently returned by Next or
// Previous. It returns ErrIllegalState when there is no such element,
// or when it has already been removed (or an element added) since the
// last move.
func (c *Cursor[T]) Remove() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.last < 0 {
		return ers.Wrap(ers.ErrIllegalState, "remove without a returned element")
	}
	if _, err := c.vec.RemoveAt(c.last); err != nil {
		return err
	}
	if c.last < c.pos {
		c.pos--
	}
	c.last = -1
	c.sync()
	return nil
}

// Set replaces the element most recently returned by Next or
// Previous. Set has the same eligibility rules as Remove.
func (c *Cursor[T]) Set(val T) error {
	if err := c.check(); err != nil {
		return err
	}
	if c.last < 0 {
		return ers.Wrap(ers.ErrIllegalState, "set without a returned element")
	}
	return c.vec.Set(c.last, val)
}

// Add inserts the value at the cursor position: the next call to
// Next is unaffected, and Previous returns the new element.
func (c *Cursor[T]) Add(val T) error {
	if err := c.check(); err != nil {
		return err
	}
	if err := c.vec.Insert(c.pos, val); err != nil {
		return err
	}
	c.pos++
	c.last = -1
	c.sync()
	return nil
}
