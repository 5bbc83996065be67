package colframe

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/cockroachdb/errors"
	"github.com/nao1215/colframe/domain/model"
	"github.com/xuri/excelize/v2"
)

const (
	csvDelimiter = ','
	tsvDelimiter = '\t'
)

// ReadTable decodes the file at path. The first record is the header.
func (c *FileCodec) ReadTable(path string) (*model.Table, error) {
	ec := NewErrorContext("read", path)
	if !model.IsSupportedFile(path) {
		return nil, ec.Error(ErrUnsupportedFormat)
	}
	f := model.NewFile(path)

	reader, closer, err := openCompressedReader(f)
	if err != nil {
		return nil, ec.Error(err)
	}
	defer func() {
		_ = closer() // Ignore close error after a completed read
	}()

	var header model.Header
	var records []model.Record
	switch f.Type() {
	case model.FileTypeCSV:
		header, records, err = parseDelimited(reader, csvDelimiter)
	case model.FileTypeTSV:
		header, records, err = parseDelimited(reader, tsvDelimiter)
	case model.FileTypeLTSV:
		header, records, err = parseLTSV(reader)
	case model.FileTypeXLSX:
		header, records, err = parseXLSX(reader)
	case model.FileTypeParquet:
		header, records, err = parseParquet(reader)
	}
	if err != nil {
		return nil, ec.WithDetails(f.Type().String()).Error(err)
	}
	if err := header.Validate(); err != nil {
		return nil, ec.Error(err)
	}
	return model.NewTable(model.TableNameFromPath(path), header, records), nil
}

// parseDelimited parses CSV or TSV data with the given delimiter.
// Every record must have as many fields as the header.
func parseDelimited(r io.Reader, delimiter rune) (model.Header, []model.Record, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.NewRecord(row))
	}
	return model.NewHeader(rows[0]), records, nil
}

// parseLTSV parses labeled tab-separated values. Columns are ordered by the
// first appearance of their label; a label missing from a line yields an
// empty cell.
func parseLTSV(r io.Reader) (model.Header, []model.Record, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	var header model.Header
	positions := make(map[string]int)
	var rows []map[string]string

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		row := make(map[string]string)
		for _, pair := range strings.Split(line, "\t") {
			label, value, ok := strings.Cut(pair, ":")
			if !ok {
				continue
			}
			if _, seen := positions[label]; !seen {
				positions[label] = len(header)
				header = append(header, label)
			}
			row[label] = value
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		record := make(model.Record, len(header))
		for i, label := range header {
			record[i] = row[label]
		}
		records = append(records, record)
	}
	return header, records, nil
}

// parseXLSX reads the first sheet of a workbook. Rows shorter than the
// header are padded with empty cells.
func parseXLSX(r io.Reader) (model.Header, []model.Record, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = book.Close() // Ignore close error
	}()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyData
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	header := make(model.Header, len(rows[0]))
	copy(header, rows[0])

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(model.Record, len(header))
		copy(record, row)
		records = append(records, record)
	}
	// GetRows drops trailing rows without values
	total := xlsxTableRows(book)
	for len(records) < total-1 {
		records = append(records, make(model.Record, len(header)))
	}
	return header, records, nil
}

// xlsxTableRows returns the row count, header included, recorded in the
// workbook's table name, or 0 when the workbook carries none.
func xlsxTableRows(book *excelize.File) int {
	for _, name := range book.GetDefinedName() {
		if name.Name != xlsxTableName {
			continue
		}
		_, ref, ok := strings.Cut(name.RefersTo, "!")
		if !ok {
			return 0
		}
		_, last, ok := strings.Cut(ref, ":")
		if !ok {
			return 0
		}
		_, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(last, "$", ""))
		if err != nil {
			return 0
		}
		return row
	}
	return 0
}

// parseParquet reads a parquet file through arrow. Parquet needs random
// access, so the whole input is buffered first.
func parseParquet(r io.Reader) (model.Header, []model.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read parquet data")
	}
	if len(data) == 0 {
		return nil, nil, ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create parquet reader")
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create arrow reader")
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read table")
	}
	defer table.Release()

	schema := table.Schema()
	header := make(model.Header, schema.NumFields())
	for i, field := range schema.Fields() {
		header[i] = field.Name
	}

	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	records := make([]model.Record, 0, table.NumRows())
	for tableReader.Next() {
		batch := tableReader.Record()
		for i := range int(batch.NumRows()) {
			record := make(model.Record, batch.NumCols())
			for j, col := range batch.Columns() {
				record[j] = arrowCell(col, i)
			}
			records = append(records, record)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "error reading table records")
	}
	return header, records, nil
}

// arrowCell returns the text form of element i of arr. Nulls are empty.
func arrowCell(arr arrow.Array, i int) string {
	if arr.IsNull(i) {
		return ""
	}
	switch a := arr.(type) {
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Int64:
		return strconv.FormatInt(a.Value(i), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(a.Value(i)), 10)
	case *array.Uint64:
		return strconv.FormatUint(a.Value(i), 10)
	case *array.Float64:
		return strconv.FormatFloat(a.Value(i), 'g', -1, 64)
	case *array.Float32:
		return strconv.FormatFloat(float64(a.Value(i)), 'g', -1, 32)
	default:
		return arr.ValueStr(i)
	}
}
