// Package colframe provides an in-memory, columnar table ("frame") with
// numeric and discrete (string) columns.
//
// A Frame is generic over one numeric element type T shared by all of its
// numeric columns. Frames are built whole, never change afterwards, and
// every transformation returns a new Frame.
//
// # Loading and saving
//
// Frames are read from and written to tabular files. The format follows the
// file extension: CSV, TSV, LTSV, Excel (XLSX) and Parquet are supported, each
// optionally compressed with gzip, bzip2, xz or zstandard:
//
//	frame, err := colframe.FromFile[int64]("scores.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := frame.ToFile("scores.tsv.gz"); err != nil {
//	    log.Fatal(err)
//	}
//
// While loading, a column becomes numeric when every one of its values parses
// as T. Any other column is discrete and keeps its raw strings. Numeric
// columns are placed first, then discrete ones, each group in file order.
//
// # Filtering
//
// Filter evaluates a predicate on one column and applies the resulting row
// mask to every column, so rows stay aligned:
//
//	adults := frame.Filter("age", colframe.GreaterOrEqual, colframe.NumericOperand[int64](18))
//	tokyo := frame.Filter("city", colframe.Equal, colframe.DiscreteOperand[int64]("Tokyo"))
//
// Discrete columns only compare by equality.
//
// # Errors
//
// Load and save operations return errors. Misuse of the API, such as an
// unknown column name, a mask of the wrong length, or an operand of the wrong
// kind, panics with an error wrapping one of the Err* contract sentinels.
//
// # SQL
//
// ToSQL copies a frame into a table of a database/sql database and FromQuery
// builds a frame from a result set. OpenMemoryDB opens an in-memory SQLite
// database for that purpose.
package colframe
