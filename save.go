package colframe

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/cockroachdb/errors"
	"github.com/nao1215/colframe/domain/model"
	"github.com/xuri/excelize/v2"
)

const (
	// xlsxSheet is the sheet name used when writing workbooks
	xlsxSheet = "Sheet1"
	// xlsxTableName is the workbook defined name covering the written table,
	// header included. Readers use it to restore trailing empty rows.
	xlsxTableName = "colframe_table"
)

// WriteTable encodes table into path, replacing any existing file.
func (c *FileCodec) WriteTable(path string, table *model.Table) (err error) {
	ec := NewErrorContext("write", path)
	if !model.IsSupportedFile(path) {
		return ec.Error(ErrUnsupportedFormat)
	}
	f := model.NewFile(path)

	writer, closer, err := createCompressedWriter(f)
	if err != nil {
		return ec.Error(err)
	}
	defer func() {
		if closeErr := closer(); closeErr != nil && err == nil {
			err = ec.Error(closeErr)
		}
	}()

	switch f.Type() {
	case model.FileTypeCSV:
		err = writeDelimited(writer, table, csvDelimiter)
	case model.FileTypeTSV:
		err = writeDelimited(writer, table, tsvDelimiter)
	case model.FileTypeLTSV:
		err = writeLTSV(writer, table)
	case model.FileTypeXLSX:
		err = writeXLSX(writer, table)
	case model.FileTypeParquet:
		err = writeParquet(writer, table)
	}
	if err != nil {
		return ec.WithDetails(f.Type().String()).Error(err)
	}
	return nil
}

// writeDelimited writes the header and records; quoting is left to encoding/csv.
func writeDelimited(w io.Writer, table *model.Table, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := csvWriter.Write(table.Header()); err != nil {
		return err
	}
	for _, record := range table.Records() {
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// writeLTSV writes one "label:value" line per record. A table without
// records produces an empty file, as LTSV has no header line.
func writeLTSV(w io.Writer, table *model.Table) error {
	header := table.Header()
	var sb strings.Builder
	for _, record := range table.Records() {
		sb.Reset()
		for i, label := range header {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(label)
			sb.WriteByte(':')
			if i < len(record) {
				sb.WriteString(record[i])
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeXLSX writes the table to the first sheet of a new workbook. Cells are
// stored as text so that numbers keep their exact canonical form.
func writeXLSX(w io.Writer, table *model.Table) error {
	book := excelize.NewFile()
	defer func() {
		_ = book.Close() // Ignore close error
	}()

	rows := make([][]string, 0, len(table.Records())+1)
	rows = append(rows, table.Header())
	for _, record := range table.Records() {
		rows = append(rows, record)
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := book.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return errors.Wrapf(err, "failed to write row %d", r+1)
		}
	}

	if len(table.Header()) > 0 {
		last, err := excelize.CoordinatesToCellName(len(table.Header()), len(rows), true)
		if err != nil {
			return err
		}
		if err := book.SetDefinedName(&excelize.DefinedName{
			Name:     xlsxTableName,
			RefersTo: fmt.Sprintf("%s!$A$1:%s", xlsxSheet, last),
		}); err != nil {
			return errors.Wrap(err, "failed to name table range")
		}
	}
	return book.Write(w)
}

// writeParquet writes the table with one typed parquet column per table
// column, following Table.ColumnTypes: integers as int64 or uint64, reals as
// float32 or float64, and text as UTF-8.
func writeParquet(w io.Writer, table *model.Table) error {
	mem := memory.NewGoAllocator()
	header := table.Header()
	types := table.ColumnTypes()

	fields := make([]arrow.Field, len(header))
	columns := make([]arrow.Array, len(header))
	defer func() {
		for _, col := range columns {
			if col != nil {
				col.Release()
			}
		}
	}()

	for i, name := range header {
		values := table.Column(i)
		var err error
		switch types[i] {
		case model.ColumnTypeInteger:
			fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Int64}
			columns[i], err = buildInt64Array(mem, values)
		case model.ColumnTypeUnsigned:
			fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Uint64}
			columns[i], err = buildUint64Array(mem, values)
		case model.ColumnTypeReal:
			fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
			columns[i], err = buildFloat64Array(mem, values)
		case model.ColumnTypeFloat:
			fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float32}
			columns[i], err = buildFloat32Array(mem, values)
		default:
			fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String}
			columns[i] = buildStringArray(mem, values)
		}
		if err != nil {
			return errors.Wrapf(err, "column %q", name)
		}
	}

	schema := arrow.NewSchema(fields, nil)
	numRows := int64(len(table.Records()))
	record := array.NewRecord(schema, columns, numRows)
	defer record.Release()

	arrowTable := array.NewTableFromRecords(schema, []arrow.Record{record})
	defer arrowTable.Release()

	// pqarrow closes its sink; keep the compressed writer open for our own cleanup
	sink := struct{ io.Writer }{w}
	return pqarrow.WriteTable(arrowTable, sink, max(numRows, 1),
		parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
}

func buildInt64Array(mem memory.Allocator, values []string) (arrow.Array, error) {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	for _, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		b.Append(n)
	}
	return b.NewArray(), nil
}

func buildUint64Array(mem memory.Allocator, values []string) (arrow.Array, error) {
	b := array.NewUint64Builder(mem)
	defer b.Release()
	for _, v := range values {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		b.Append(n)
	}
	return b.NewArray(), nil
}

func buildFloat32Array(mem memory.Allocator, values []string) (arrow.Array, error) {
	b := array.NewFloat32Builder(mem)
	defer b.Release()
	for _, v := range values {
		n, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, err
		}
		b.Append(float32(n))
	}
	return b.NewArray(), nil
}

func buildFloat64Array(mem memory.Allocator, values []string) (arrow.Array, error) {
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	for _, v := range values {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		b.Append(n)
	}
	return b.NewArray(), nil
}

func buildStringArray(mem memory.Allocator, values []string) arrow.Array {
	b := array.NewStringBuilder(mem)
	defer b.Release()
	for _, v := range values {
		b.Append(v)
	}
	return b.NewArray()
}
