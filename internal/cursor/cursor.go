// Package cursor provides a forkable read position over an immutable slice.
//
// A Cursor is a small value: copying it (or calling Clone) forks the
// position in O(1) while sharing the backing slice. Advancing one copy never
// affects another, which is what lets the match engine try several
// consumption amounts and roll back by simply discarding a copy.
package cursor

// Cursor is a position within a slice. The backing slice must not be
// modified while cursors over it are in use.
type Cursor[T any] struct {
	seq []T
	pos int
}

// New returns a cursor positioned at the first element of seq.
func New[T any](seq []T) Cursor[T] {
	return Cursor[T]{seq: seq}
}

// Current returns the element under the cursor. ok is false when the cursor
// is exhausted.
func (c *Cursor[T]) Current() (elem T, ok bool) {
	if c.pos >= len(c.seq) {
		return elem, false
	}
	return c.seq[c.pos], true
}

// Advance returns the current element and moves past it. It does not move
// an exhausted cursor.
func (c *Cursor[T]) Advance() (elem T, ok bool) {
	elem, ok = c.Current()
	if ok {
		c.pos++
	}
	return elem, ok
}

// HasMore reports whether Current would return an element.
func (c *Cursor[T]) HasMore() bool {
	return c.pos < len(c.seq)
}

// Clone returns an independent cursor at the same position.
func (c *Cursor[T]) Clone() Cursor[T] {
	return *c
}

// Remaining returns the number of elements left.
func (c *Cursor[T]) Remaining() int {
	return len(c.seq) - c.pos
}
