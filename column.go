package colframe

// Kind identifies which variant a Column holds.
type Kind int

const (
	// KindNumeric is a column of numbers
	KindNumeric Kind = iota
	// KindDiscrete is a column of strings
	KindDiscrete
)

// String returns the kind name
func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "discrete"
}

// Column is either a numeric or a discrete column. Exactly one of the two
// variants is set; the zero value is not a valid Column.
type Column[T Number] struct {
	numeric  *NumericColumn[T]
	discrete *DiscreteColumn
}

// NewNumericColumn wraps a new numeric column.
func NewNumericColumn[T Number](name string, values []T) Column[T] {
	return Column[T]{numeric: NewNumeric(name, values)}
}

// NewDiscreteColumn wraps a new discrete column.
func NewDiscreteColumn[T Number](name string, values []string) Column[T] {
	return Column[T]{discrete: NewDiscrete(name, values)}
}

// Kind returns the active variant
func (c Column[T]) Kind() Kind {
	if c.numeric != nil {
		return KindNumeric
	}
	return KindDiscrete
}

// Numeric returns the numeric variant, if active.
func (c Column[T]) Numeric() (*NumericColumn[T], bool) {
	return c.numeric, c.numeric != nil
}

// Discrete returns the discrete variant, if active.
func (c Column[T]) Discrete() (*DiscreteColumn, bool) {
	return c.discrete, c.discrete != nil
}

// Name returns the column name
func (c Column[T]) Name() string {
	if c.numeric != nil {
		return c.numeric.Name()
	}
	return c.discrete.Name()
}

// Len returns the number of rows
func (c Column[T]) Len() int {
	if c.numeric != nil {
		return c.numeric.Len()
	}
	return c.discrete.Len()
}

// NumericAt returns the number at row i. ok is false for a discrete column.
func (c Column[T]) NumericAt(i int) (v T, ok bool) {
	if c.numeric == nil {
		return v, false
	}
	return c.numeric.Get(i), true
}

// Cell returns the text form of row i: the canonical number for numeric
// columns and the raw value for discrete ones.
func (c Column[T]) Cell(i int) string {
	if c.numeric != nil {
		return FormatNumber(c.numeric.Get(i))
	}
	return c.discrete.Get(i)
}

// FilterMask evaluates the predicate against every row. A numeric column
// requires a numeric operand and a discrete column a discrete one; a missing
// operand of the needed kind panics with ErrOperandMismatch. Discrete columns
// compare by equality whatever op is.
func (c Column[T]) FilterMask(op Comparator, operand Operand[T]) []bool {
	if c.numeric != nil {
		if !operand.hasNumber {
			panic(violation(ErrOperandMismatch, "numeric column %q filtered without a numeric operand", c.Name()))
		}
		return c.numeric.PredicateMask(operand.number, op)
	}
	if !operand.hasText {
		panic(violation(ErrOperandMismatch, "discrete column %q filtered without a string operand", c.Name()))
	}
	return c.discrete.PredicateMask(operand.text)
}

// MaskedView applies mask to the active variant.
func (c Column[T]) MaskedView(mask []bool) Column[T] {
	if c.numeric != nil {
		return Column[T]{numeric: c.numeric.MaskedView(mask)}
	}
	return Column[T]{discrete: c.discrete.MaskedView(mask)}
}

// Range slices rows [start, end) of the active variant.
func (c Column[T]) Range(start, end int) Column[T] {
	if c.numeric != nil {
		return Column[T]{numeric: c.numeric.Range(start, end)}
	}
	return Column[T]{discrete: c.discrete.Range(start, end)}
}

// String renders the active variant
func (c Column[T]) String() string {
	if c.numeric != nil {
		return c.numeric.String()
	}
	return c.discrete.String()
}

// Operand is the right-hand side of a filter. It may carry a number, a
// string, or both; the filtered column picks the one matching its kind.
type Operand[T Number] struct {
	number    T
	text      string
	hasNumber bool
	hasText   bool
}

// NumericOperand returns an operand for numeric columns.
func NumericOperand[T Number](v T) Operand[T] {
	return Operand[T]{number: v, hasNumber: true}
}

// DiscreteOperand returns an operand for discrete columns.
func DiscreteOperand[T Number](s string) Operand[T] {
	return Operand[T]{text: s, hasText: true}
}

// Operands returns an operand usable against either column kind.
func Operands[T Number](v T, s string) Operand[T] {
	return Operand[T]{number: v, text: s, hasNumber: true, hasText: true}
}
