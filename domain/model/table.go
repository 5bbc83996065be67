package model

import (
	"path/filepath"
	"strings"
)

// Table is the text form of a tabular file: a header and its records.
type Table struct {
	// name is derived from the file path.
	name string
	// header is table header.
	header Header
	// records is table records.
	records []Record
	// types are the declared storage types, one per header column, or nil.
	types []ColumnType
}

// NewTable create new Table.
func NewTable(
	name string,
	header Header,
	records []Record,
) *Table {
	return &Table{
		name:    name,
		header:  header,
		records: records,
	}
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Header return table header.
func (t *Table) Header() Header {
	return t.header
}

// Records return table records.
func (t *Table) Records() []Record {
	return t.records
}

// WithColumnTypes returns a copy of t that declares the storage type of
// each column. types must have one entry per header column; otherwise the
// declaration is ignored and types are inferred.
func (t *Table) WithColumnTypes(types []ColumnType) *Table {
	c := *t
	c.types = append([]ColumnType(nil), types...)
	return &c
}

// ColumnTypes returns the declared storage types, or the types inferred
// from the text when none were declared.
func (t *Table) ColumnTypes() []ColumnType {
	if t.types != nil && len(t.types) == len(t.header) {
		return append([]ColumnType(nil), t.types...)
	}
	return InferColumnTypes(t)
}

// Column returns the cells of column i, one per record.
// Records shorter than the header yield an empty cell.
func (t *Table) Column(i int) []string {
	values := make([]string, len(t.records))
	for j, record := range t.records {
		if i < len(record) {
			values[j] = record[i]
		}
	}
	return values
}

// TableNameFromPath creates table name from file path
func TableNameFromPath(filePath string) string {
	fileName := filepath.Base(filePath)
	// Remove compression extensions first
	for _, ext := range []string{ExtGZ, ExtBZ2, ExtXZ, ExtZSTD} {
		if strings.HasSuffix(fileName, ext) {
			fileName = strings.TrimSuffix(fileName, ext)
			break
		}
	}
	// Then remove the file type extension
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
