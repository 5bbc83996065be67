// Package model provides the value types shared by the colframe tabular codec.
package model

import "github.com/cockroachdb/errors"

// ErrDuplicateColumnName is returned when a table header repeats a column name
var ErrDuplicateColumnName = errors.New("duplicate column name")
