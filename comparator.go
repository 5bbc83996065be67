package colframe

import "cmp"

// Comparator is the operator of a row predicate.
type Comparator int

const (
	// Equal keeps rows whose value equals the operand
	Equal Comparator = iota
	// NotEqual keeps rows whose value differs from the operand
	NotEqual
	// LessThan keeps rows whose value is less than the operand
	LessThan
	// LessOrEqual keeps rows whose value is less than or equal to the operand
	LessOrEqual
	// GreaterThan keeps rows whose value is greater than the operand
	GreaterThan
	// GreaterOrEqual keeps rows whose value is greater than or equal to the operand
	GreaterOrEqual
)

// String returns the operator symbol
func (c Comparator) String() string {
	switch c {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterOrEqual:
		return ">="
	default:
		return "unknown"
	}
}

// Evaluate reports whether "a op b" holds.
//
// Floating point NaN is unordered: every comparison involving NaN is false
// except NotEqual, which is true.
func Evaluate[T cmp.Ordered](a T, op Comparator, b T) bool {
	switch op {
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	case LessThan:
		return a < b
	case LessOrEqual:
		return a <= b
	case GreaterThan:
		return a > b
	case GreaterOrEqual:
		return a >= b
	default:
		panic(violation(ErrUnknownComparator, "comparator %d", int(op)))
	}
}
