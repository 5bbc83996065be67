package colframe

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/nao1215/colframe/domain/model"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// SQLiteDriverName is the database/sql driver name of the bundled SQLite engine
const SQLiteDriverName = "sqlite"

// OpenMemoryDB opens a private in-memory SQLite database.
//
// An in-memory SQLite database lives in a single connection, so the pool is
// limited to one connection.
func OpenMemoryDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(SQLiteDriverName, ":memory:")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open in-memory database")
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to connect to in-memory database")
	}
	return db, nil
}

// ToSQL creates table in db and inserts every row of the frame in one
// transaction. Numeric columns are declared INTEGER or REAL after T, discrete
// columns TEXT. The table must not exist yet.
func (f *Frame[T]) ToSQL(ctx context.Context, db *sql.DB, table string) (err error) {
	ec := NewErrorContext("export", "").WithDetails("table " + table)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ec.Error(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // Ignore rollback error, the original error matters
		}
	}()

	if _, err = tx.ExecContext(ctx, f.createTableStatement(table)); err != nil {
		return ec.Error(err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdentifier(table), placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return ec.Error(err)
	}
	defer stmt.Close()

	args := make([]any, len(f.columns))
	for r := range f.numRows {
		for j, col := range f.columns {
			if v, ok := col.NumericAt(r); ok {
				args[j] = v
				continue
			}
			args[j] = col.Cell(r)
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return ec.WithDetails(fmt.Sprintf("table %s, row %d", table, r)).Error(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return ec.Error(err)
	}
	return nil
}

func (f *Frame[T]) createTableStatement(table string) string {
	types := f.columnTypes()
	defs := make([]string, len(f.columns))
	for i, col := range f.columns {
		defs[i] = quoteIdentifier(col.Name()) + " " + types[i].String()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdentifier(table), strings.Join(defs, ", "))
}

// quoteIdentifier quotes an SQL identifier, doubling embedded quotes
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// FromQuery runs query against db and builds a frame from its result set,
// classifying columns exactly like a file load. NULL becomes an empty cell.
func FromQuery[T Number](ctx context.Context, db *sql.DB, query string, args ...any) (*Frame[T], error) {
	ec := NewErrorContext("query", "").WithDetails(query)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ec.Error(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, ec.Error(err)
	}

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var records []model.Record
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, ec.Error(err)
		}
		record := make(model.Record, len(columns))
		for i, v := range values {
			record[i] = sqlCell(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, ec.Error(err)
	}

	frame, err := FromTable[T](model.NewTable("query", model.NewHeader(columns), records))
	if err != nil {
		return nil, ec.Error(err)
	}
	return frame, nil
}

// sqlCell converts a scanned driver value to text
func sqlCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", x)
	}
}
