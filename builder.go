package colframe

import (
	"github.com/nao1215/colframe/domain/model"
)

// BuildFromColumns builds a frame with the numeric columns first, in the
// given order, followed by the discrete columns.
//
// Names and data must pair up one to one and every column must have the
// same length; otherwise it panics with ErrShapeMismatch. Repeated names
// panic with ErrDuplicateColumn. The row count is the length of the first
// column, numeric or discrete.
func BuildFromColumns[T Number](
	numericNames []string,
	numericData [][]T,
	discreteNames []string,
	discreteData [][]string,
) *Frame[T] {
	if len(numericNames) != len(numericData) {
		panic(violation(ErrShapeMismatch, "%d numeric names for %d numeric columns", len(numericNames), len(numericData)))
	}
	if len(discreteNames) != len(discreteData) {
		panic(violation(ErrShapeMismatch, "%d discrete names for %d discrete columns", len(discreteNames), len(discreteData)))
	}

	columns := make([]Column[T], 0, len(numericNames)+len(discreteNames))
	for i, name := range numericNames {
		columns = append(columns, NewNumericColumn(name, numericData[i]))
	}
	for i, name := range discreteNames {
		columns = append(columns, NewDiscreteColumn[T](name, discreteData[i]))
	}
	return newFrame(columns)
}

// columnPlan is the outcome of classifying one table column.
type columnPlan[T Number] struct {
	name    string
	numbers []T
	texts   []string
	numeric bool
	// mixedAt is the first row that failed to parse after earlier rows
	// parsed, or -1.
	mixedAt int
}

// classifyColumn decides whether values form a numeric column of T.
// A column is numeric only when it has at least one value and every value
// parses; a single failure keeps the whole column discrete so that no row
// is ever dropped.
func classifyColumn[T Number](name string, values []string) columnPlan[T] {
	plan := columnPlan[T]{name: name, texts: values, mixedAt: -1}
	if len(values) == 0 {
		return plan
	}
	numbers := make([]T, len(values))
	for i, s := range values {
		v, err := ParseNumber[T](s)
		if err != nil {
			if i > 0 {
				plan.mixedAt = i
			}
			return plan
		}
		numbers[i] = v
	}
	plan.numbers = numbers
	plan.numeric = true
	return plan
}

// FromTable builds a frame from a text table, classifying every column as
// numeric or discrete. Numeric columns come first, then discrete ones, each
// group in table order.
func FromTable[T Number](table *model.Table) (*Frame[T], error) {
	plans, err := planTable[T](table)
	if err != nil {
		return nil, err
	}
	return buildFromPlans(plans), nil
}

func planTable[T Number](table *model.Table) ([]columnPlan[T], error) {
	header := table.Header()
	if err := header.Validate(); err != nil {
		return nil, err
	}
	plans := make([]columnPlan[T], len(header))
	for i, name := range header {
		plans[i] = classifyColumn[T](name, table.Column(i))
	}
	return plans, nil
}

func buildFromPlans[T Number](plans []columnPlan[T]) *Frame[T] {
	var (
		numericNames  []string
		numericData   [][]T
		discreteNames []string
		discreteData  [][]string
	)
	for _, p := range plans {
		if p.numeric {
			numericNames = append(numericNames, p.name)
			numericData = append(numericData, p.numbers)
			continue
		}
		discreteNames = append(discreteNames, p.name)
		discreteData = append(discreteData, p.texts)
	}
	return BuildFromColumns(numericNames, numericData, discreteNames, discreteData)
}
