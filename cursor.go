package cz

// Cursor tracks a position over a fixed sequence. Element accessors report
// whether the element is present instead of indexing out of bounds.
//
// The position never leaves the range [0, len]; len means the input is
// exhausted.
type Cursor[T any] struct {
	items []T
	pos   int
}

func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{
		items: items,
	}
}

func (c *Cursor[T]) at(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.items) {
		return zero, false
	}
	return c.items[i], true
}

func (c *Cursor[T]) Pos() int {
	return c.pos
}

func (c *Cursor[T]) First() (T, bool) {
	return c.at(0)
}

func (c *Cursor[T]) Last() (T, bool) {
	return c.at(len(c.items) - 1)
}

func (c *Cursor[T]) Current() (T, bool) {
	return c.at(c.pos)
}

// Open reports whether the current element is present.
func (c *Cursor[T]) Open() bool {
	_, ok := c.Current()
	return ok
}

func (c *Cursor[T]) End() bool {
	return !c.Open()
}

// Forward moves one step and returns the new current element.
func (c *Cursor[T]) Forward() (T, bool) {
	if c.pos < len(c.items) {
		c.pos++
	}
	return c.Current()
}

// Back moves one step backwards and returns the new current element.
func (c *Cursor[T]) Back() (T, bool) {
	if c.pos > 0 {
		c.pos--
	}
	return c.Current()
}
