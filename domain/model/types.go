package model

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Header is the ordered list of column names of a table.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Validate checks for duplicate column names.
// Names are compared after trimming surrounding whitespace.
func (h Header) Validate() error {
	seen := make(map[string]struct{}, len(h))
	for _, col := range h {
		trimmed := strings.TrimSpace(col)
		if _, ok := seen[trimmed]; ok {
			return errors.Wrapf(ErrDuplicateColumnName, "%q", col)
		}
		seen[trimmed] = struct{}{}
	}
	return nil
}

// Record is one data row of a table, as text.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}
