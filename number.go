package colframe

import (
	"reflect"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/nao1215/colframe/domain/model"
	"golang.org/x/exp/constraints"
)

// Number is the element type of numeric columns.
type Number interface {
	constraints.Integer | constraints.Float
}

// ParseNumber parses s as T using T's bit size.
func ParseNumber[T Number](s string) (T, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "parse %q as %s", s, typ)
		}
		return T(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "parse %q as %s", s, typ)
		}
		return T(v), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return zero, errors.Wrapf(err, "parse %q as %s", s, typ)
		}
		return T(v), nil
	default:
		return zero, errors.Newf("unsupported numeric kind %s", typ.Kind())
	}
}

// FormatNumber returns the canonical text form of v.
// The result parses back to the same value with ParseNumber.
func FormatNumber[T Number](v T) string {
	typ := reflect.TypeOf(v)
	switch typ.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(uint64(v), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(float64(v), 'g', -1, typ.Bits())
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// storageType returns the column type that stores every value of T without loss.
func storageType[T Number]() model.ColumnType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return model.ColumnTypeUnsigned
	case reflect.Float32:
		return model.ColumnTypeFloat
	case reflect.Float64:
		return model.ColumnTypeReal
	default:
		return model.ColumnTypeInteger
	}
}
