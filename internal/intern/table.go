// Package intern assigns dense, stable indices to repeated values.
package intern

// Table is an append-only, order-preserving set of values. The index of
// a value is the position of its first insertion and never changes.
//
// The zero value is ready to use. A Table is not safe for concurrent use.
type Table[T comparable] struct {
	values []T
	index  map[T]int
}

// New returns an empty table with room for capacity values.
func New[T comparable](capacity int) *Table[T] {
	return &Table[T]{
		values: make([]T, 0, capacity),
		index:  make(map[T]int, capacity),
	}
}

// Intern returns the index of v, inserting it at the end if it has not
// been seen before.
func (t *Table[T]) Intern(v T) int {
	if i, ok := t.index[v]; ok {
		return i
	}

	return t.Append(v)
}

// Append adds v at the end unconditionally and returns its position.
// Later lookups of a repeated value keep resolving to its first index,
// so seeded tables stay index-aligned with their source.
func (t *Table[T]) Append(v T) int {
	if t.index == nil {
		t.index = make(map[T]int)
	}

	i := len(t.values)
	t.values = append(t.values, v)

	if _, ok := t.index[v]; !ok {
		t.index[v] = i
	}

	return i
}

// Len returns the number of stored values, duplicates from Append included.
func (t *Table[T]) Len() int {
	return len(t.values)
}

// Values returns a copy of the stored values in index order.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)

	return out
}
