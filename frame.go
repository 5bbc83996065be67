package colframe

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nao1215/colframe/domain/model"
)

// Frame is an ordered set of equally long, uniquely named columns.
//
// A Frame never changes after it is built. Filter and Range return new
// frames and leave the receiver untouched.
type Frame[T Number] struct {
	columns []Column[T]
	// index maps a column name to its position in columns.
	index   map[string]int
	numRows int
}

// newFrame assembles a frame, enforcing unique names and a common length.
// The row count comes from the first column; a frame without columns has no rows.
func newFrame[T Number](columns []Column[T]) *Frame[T] {
	index := make(map[string]int, len(columns))
	numRows := 0
	if len(columns) > 0 {
		numRows = columns[0].Len()
	}
	for i, col := range columns {
		if _, ok := index[col.Name()]; ok {
			panic(violation(ErrDuplicateColumn, "column %q", col.Name()))
		}
		if col.Len() != numRows {
			panic(violation(ErrShapeMismatch, "column %q has %d rows, expected %d", col.Name(), col.Len(), numRows))
		}
		index[col.Name()] = i
	}
	return &Frame[T]{columns: columns, index: index, numRows: numRows}
}

// withColumns returns a frame with the same column names and positions as f.
// The name index is shared since neither frame mutates it.
func (f *Frame[T]) withColumns(columns []Column[T], numRows int) *Frame[T] {
	return &Frame[T]{columns: columns, index: f.index, numRows: numRows}
}

// NumRows returns the number of rows
func (f *Frame[T]) NumRows() int {
	return f.numRows
}

// NumCols returns the number of columns
func (f *Frame[T]) NumCols() int {
	return len(f.columns)
}

// Names returns the column names in frame order
func (f *Frame[T]) Names() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name()
	}
	return names
}

// Column looks a column up by name.
func (f *Frame[T]) Column(name string) (Column[T], bool) {
	i, ok := f.index[name]
	if !ok {
		return Column[T]{}, false
	}
	return f.columns[i], true
}

// ColumnAt returns the column at position i.
func (f *Frame[T]) ColumnAt(i int) Column[T] {
	if i < 0 || i >= len(f.columns) {
		panic(violation(ErrOutOfRange, "column position %d with %d columns", i, len(f.columns)))
	}
	return f.columns[i]
}

// NumericColumnNames returns the names of the numeric columns in frame order.
func (f *Frame[T]) NumericColumnNames() []string {
	var names []string
	for _, col := range f.columns {
		if col.Kind() == KindNumeric {
			names = append(names, col.Name())
		}
	}
	return names
}

// NumericColumnPositions returns the positions of the numeric columns, in
// the same order as NumericColumnNames.
func (f *Frame[T]) NumericColumnPositions() []int {
	names := f.NumericColumnNames()
	positions := make([]int, len(names))
	for i, name := range names {
		positions[i] = f.index[name]
	}
	return positions
}

// NumericMatrix returns the numeric columns as rows: one slice per frame
// row, one entry per numeric column in frame order.
func (f *Frame[T]) NumericMatrix() [][]T {
	positions := f.NumericColumnPositions()
	matrix := make([][]T, f.numRows)
	for r := range f.numRows {
		row := make([]T, len(positions))
		for j, p := range positions {
			v, ok := f.columns[p].NumericAt(r)
			if !ok {
				panic(violation(ErrShapeMismatch, "column %q has no number at row %d", f.columns[p].Name(), r))
			}
			row[j] = v
		}
		matrix[r] = row
	}
	return matrix
}

// Filter keeps the rows where "column op operand" holds. The mask computed
// from the named column is applied to every column, so rows stay aligned.
// An unknown column name panics with ErrColumnNotFound.
func (f *Frame[T]) Filter(column string, op Comparator, operand Operand[T]) *Frame[T] {
	i, ok := f.index[column]
	if !ok {
		panic(violation(ErrColumnNotFound, "filter on %q", column))
	}
	mask := f.columns[i].FilterMask(op, operand)

	columns := make([]Column[T], len(f.columns))
	for j, col := range f.columns {
		columns[j] = col.MaskedView(mask)
	}
	numRows := 0
	for _, keep := range mask {
		if keep {
			numRows++
		}
	}
	return f.withColumns(columns, numRows)
}

// Range returns rows [start, end) of every column.
func (f *Frame[T]) Range(start, end int) *Frame[T] {
	checkRange("frame", f.numRows, start, end)
	columns := make([]Column[T], len(f.columns))
	for j, col := range f.columns {
		columns[j] = col.Range(start, end)
	}
	return f.withColumns(columns, end-start)
}

// Table converts the frame to its text form. The table declares numeric
// columns with the storage type of T and discrete columns as text.
func (f *Frame[T]) Table(name string) *model.Table {
	records := make([]model.Record, f.numRows)
	for r := range f.numRows {
		record := make(model.Record, len(f.columns))
		for j, col := range f.columns {
			record[j] = col.Cell(r)
		}
		records[r] = record
	}
	return model.NewTable(name, model.NewHeader(f.Names()), records).WithColumnTypes(f.columnTypes())
}

// columnTypes maps numeric columns to the storage type of T and discrete
// columns to text.
func (f *Frame[T]) columnTypes() []model.ColumnType {
	numeric := storageType[T]()
	types := make([]model.ColumnType, len(f.columns))
	for i, col := range f.columns {
		types[i] = model.ColumnTypeText
		if col.Kind() == KindNumeric {
			types[i] = numeric
		}
	}
	return types
}

// ToFile writes the frame to path. The format and compression follow the
// file extension, e.g. "out.csv" or "out.tsv.gz". An existing file is overwritten.
func (f *Frame[T]) ToFile(path string) error {
	return f.ToFileWith(NewFileCodec(), path)
}

// ToFileWith writes the frame to path through w.
func (f *Frame[T]) ToFileWith(w TableWriter, path string) error {
	return w.WriteTable(path, f.Table(model.TableNameFromPath(path)))
}

// Dump writes the frame into outputDir as name plus the extension chosen
// by options. The directory is created if needed. It returns the written path.
func (f *Frame[T]) Dump(outputDir, name string, options DumpOptions) (string, error) {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return "", NewErrorContext("dump", outputDir).Error(err)
	}
	path := filepath.Join(outputDir, name+options.FileExtension())
	if err := f.ToFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// String renders every column on its own line followed by the row count.
func (f *Frame[T]) String() string {
	var sb strings.Builder
	sb.WriteString("frame:\n")
	for _, col := range f.columns {
		sb.WriteString(col.String())
		sb.WriteString("\n")
	}
	sb.WriteString("Num Rows: ")
	sb.WriteString(strconv.Itoa(f.numRows))
	return sb.String()
}
