package colframe

// DiscreteColumn is a named sequence of string values.
type DiscreteColumn struct {
	name  string
	items []string
}

// NewDiscrete creates a discrete column. The column keeps its own copy of values.
func NewDiscrete(name string, values []string) *DiscreteColumn {
	items := make([]string, len(values))
	copy(items, values)
	return &DiscreteColumn{name: name, items: items}
}

// Name returns the column name
func (c *DiscreteColumn) Name() string {
	return c.name
}

// Len returns the number of values
func (c *DiscreteColumn) Len() int {
	return len(c.items)
}

// Get returns the value at row i.
func (c *DiscreteColumn) Get(i int) string {
	if i < 0 || i >= len(c.items) {
		panic(violation(ErrOutOfRange, "column %q: index %d with length %d", c.name, i, len(c.items)))
	}
	return c.items[i]
}

// Values returns a copy of the column values
func (c *DiscreteColumn) Values() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// MaskedView returns a new column holding the values whose mask entry is
// true, in their original order.
func (c *DiscreteColumn) MaskedView(mask []bool) *DiscreteColumn {
	checkMask(c.name, len(c.items), mask)
	return &DiscreteColumn{name: c.name, items: pick(c.items, mask)}
}

// Range returns a copy of rows [start, end).
func (c *DiscreteColumn) Range(start, end int) *DiscreteColumn {
	checkRange(c.name, len(c.items), start, end)
	items := make([]string, end-start)
	copy(items, c.items[start:end])
	return &DiscreteColumn{name: c.name, items: items}
}

// DistinctValues returns the set of values in the column.
func (c *DiscreteColumn) DistinctValues() map[string]struct{} {
	return distinct(c.items)
}

// PredicateMask marks the rows equal to value.
//
// Discrete columns only support equality: callers that pass another
// comparator through Column.FilterMask still get an equality mask.
func (c *DiscreteColumn) PredicateMask(value string) []bool {
	mask := make([]bool, len(c.items))
	for i, v := range c.items {
		mask[i] = v == value
	}
	return mask
}

// String renders the column as "name: [v0, v1, ...]".
func (c *DiscreteColumn) String() string {
	return render(c.name, c.items)
}
