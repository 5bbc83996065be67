package model

import (
	"strconv"
	"strings"
)

// ColumnType is the storage type a text column can be encoded as
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents 64-bit signed integers
	ColumnTypeInteger
	// ColumnTypeReal represents 64-bit floating point numbers
	ColumnTypeReal
	// ColumnTypeUnsigned represents 64-bit unsigned integers. Inference never
	// yields it; it is declared by tables built from typed columns.
	ColumnTypeUnsigned
	// ColumnTypeFloat represents 32-bit floating point numbers. Like
	// ColumnTypeUnsigned it is only declared, never inferred.
	ColumnTypeFloat
)

// String returns the SQL column type string
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeInteger, ColumnTypeUnsigned:
		return "INTEGER"
	case ColumnTypeReal, ColumnTypeFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// classifyValue returns the narrowest type that holds value without loss.
func classifyValue(value string) ColumnType {
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ColumnTypeInteger
	}
	// Integers beyond int64 would lose precision as REAL
	if _, err := strconv.ParseUint(value, 10, 64); err == nil {
		return ColumnTypeText
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return ColumnTypeReal
	}
	return ColumnTypeText
}

// InferColumnType infers the storage type of a column from its values.
// Priority: TEXT > REAL > INTEGER. An empty or blank value makes the column TEXT,
// as does an empty column.
func InferColumnType(values []string) ColumnType {
	if len(values) == 0 {
		return ColumnTypeText
	}

	result := ColumnTypeInteger
	for _, value := range values {
		if strings.TrimSpace(value) != value || value == "" {
			return ColumnTypeText
		}
		switch classifyValue(value) {
		case ColumnTypeText:
			return ColumnTypeText
		case ColumnTypeReal:
			result = ColumnTypeReal
		}
	}
	return result
}

// InferColumnTypes infers the storage type of every column of t from its text.
// Use Table.ColumnTypes to honor declared types.
func InferColumnTypes(t *Table) []ColumnType {
	types := make([]ColumnType, len(t.Header()))
	for i := range t.Header() {
		types[i] = InferColumnType(t.Column(i))
	}
	return types
}
