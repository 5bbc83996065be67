package colframe

import "strings"

// NumericColumn is a named, dense sequence of numbers.
type NumericColumn[T Number] struct {
	name  string
	items []T
}

// NewNumeric creates a numeric column. The column keeps its own copy of values.
func NewNumeric[T Number](name string, values []T) *NumericColumn[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &NumericColumn[T]{name: name, items: items}
}

// Name returns the column name
func (c *NumericColumn[T]) Name() string {
	return c.name
}

// Len returns the number of values
func (c *NumericColumn[T]) Len() int {
	return len(c.items)
}

// Get returns the value at row i.
func (c *NumericColumn[T]) Get(i int) T {
	if i < 0 || i >= len(c.items) {
		panic(violation(ErrOutOfRange, "column %q: index %d with length %d", c.name, i, len(c.items)))
	}
	return c.items[i]
}

// Values returns a copy of the column values
func (c *NumericColumn[T]) Values() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// MaskedView returns a new column holding the values whose mask entry is
// true, in their original order.
func (c *NumericColumn[T]) MaskedView(mask []bool) *NumericColumn[T] {
	checkMask(c.name, len(c.items), mask)
	return &NumericColumn[T]{name: c.name, items: pick(c.items, mask)}
}

// Range returns a copy of rows [start, end).
func (c *NumericColumn[T]) Range(start, end int) *NumericColumn[T] {
	checkRange(c.name, len(c.items), start, end)
	items := make([]T, end-start)
	copy(items, c.items[start:end])
	return &NumericColumn[T]{name: c.name, items: items}
}

// DistinctValues returns the set of values in the column. All NaN values
// share a single entry.
func (c *NumericColumn[T]) DistinctValues() map[T]struct{} {
	set := make(map[T]struct{}, len(c.items))
	seenNaN := false
	for _, v := range c.items {
		if v != v { // NaN
			if seenNaN {
				continue
			}
			seenNaN = true
		}
		set[v] = struct{}{}
	}
	return set
}

// PredicateMask evaluates "value_i op value" for every row.
func (c *NumericColumn[T]) PredicateMask(value T, op Comparator) []bool {
	mask := make([]bool, len(c.items))
	for i, v := range c.items {
		mask[i] = Evaluate(v, op, value)
	}
	return mask
}

// String renders the column as "name: [v0, v1, ...]".
func (c *NumericColumn[T]) String() string {
	cells := make([]string, len(c.items))
	for i, v := range c.items {
		cells[i] = FormatNumber(v)
	}
	return render(c.name, cells)
}

func render(name string, cells []string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(": [")
	sb.WriteString(strings.Join(cells, ", "))
	sb.WriteString("]")
	return sb.String()
}

func checkMask(name string, length int, mask []bool) {
	if len(mask) != length {
		panic(violation(ErrMaskLength, "column %q: mask length %d, column length %d", name, len(mask), length))
	}
}

func checkRange(name string, length, start, end int) {
	if start < 0 || end > length || start > end {
		panic(violation(ErrOutOfRange, "column %q: range [%d, %d) with length %d", name, start, end, length))
	}
}

func pick[E any](items []E, mask []bool) []E {
	n := 0
	for _, keep := range mask {
		if keep {
			n++
		}
	}
	out := make([]E, 0, n)
	for i, keep := range mask {
		if keep {
			out = append(out, items[i])
		}
	}
	return out
}

func distinct[E comparable](items []E) map[E]struct{} {
	set := make(map[E]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}
