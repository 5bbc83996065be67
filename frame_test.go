package colframe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleFrame returns the frame used across the frame tests.
func sampleFrame() *Frame[int32] {
	return BuildFromColumns(
		[]string{"value", "whoop"},
		[][]int32{{1, 2, 3, 4}, {14, 54, 7, 2}},
		[]string{"kabang"},
		[][]string{{"1a", "2a", "3a", "4a"}},
	)
}

func TestBuildFromColumns(t *testing.T) {
	t.Parallel()

	t.Run("Numeric columns come first", func(t *testing.T) {
		t.Parallel()

		f := BuildFromColumns(
			[]string{"n1", "n2"},
			[][]float64{{1, 2}, {3, 4}},
			[]string{"d1"},
			[][]string{{"x", "y"}},
		)
		assert.Equal(t, []string{"n1", "n2", "d1"}, f.Names())
		assert.Equal(t, 2, f.NumRows())
		assert.Equal(t, 3, f.NumCols())
		assert.Equal(t, KindDiscrete, f.ColumnAt(2).Kind())
	})

	t.Run("Name index covers every column", func(t *testing.T) {
		t.Parallel()

		f := sampleFrame()
		for i, name := range f.Names() {
			col, ok := f.Column(name)
			require.True(t, ok, name)
			assert.Equal(t, f.ColumnAt(i).String(), col.String())
		}
		_, ok := f.Column("missing")
		assert.False(t, ok)
	})

	t.Run("Discrete only frame takes its row count from the first column", func(t *testing.T) {
		t.Parallel()

		f := BuildFromColumns[int](nil, nil, []string{"d"}, [][]string{{"a", "b", "c"}})
		assert.Equal(t, 3, f.NumRows())
		assert.Empty(t, f.NumericColumnNames())
		assert.Equal(t, [][]int{{}, {}, {}}, f.NumericMatrix())
	})

	t.Run("Frame without columns", func(t *testing.T) {
		t.Parallel()

		f := BuildFromColumns[int](nil, nil, nil, nil)
		assert.Equal(t, 0, f.NumRows())
		assert.Equal(t, 0, f.NumCols())
		assert.Equal(t, "frame:\nNum Rows: 0", f.String())
	})

	t.Run("Columns of different lengths", func(t *testing.T) {
		t.Parallel()

		requireViolation(t, ErrShapeMismatch, func() {
			BuildFromColumns([]string{"a"}, [][]int{{1, 2}}, []string{"b"}, [][]string{{"x"}})
		})
	})

	t.Run("Names and data do not pair up", func(t *testing.T) {
		t.Parallel()

		requireViolation(t, ErrShapeMismatch, func() {
			BuildFromColumns([]string{"a", "b"}, [][]int{{1}}, nil, nil)
		})
		requireViolation(t, ErrShapeMismatch, func() {
			BuildFromColumns[int](nil, nil, []string{"a"}, nil)
		})
	})

	t.Run("Duplicate names", func(t *testing.T) {
		t.Parallel()

		requireViolation(t, ErrDuplicateColumn, func() {
			BuildFromColumns([]string{"a"}, [][]int{{1}}, []string{"a"}, [][]string{{"x"}})
		})
	})
}

func TestFrame_String(t *testing.T) {
	t.Parallel()

	want := "frame:\n" +
		"value: [1, 2, 3, 4]\n" +
		"whoop: [14, 54, 7, 2]\n" +
		"kabang: [1a, 2a, 3a, 4a]\n" +
		"Num Rows: 4"
	assert.Equal(t, want, sampleFrame().String())
}

func TestFrame_NumericViews(t *testing.T) {
	t.Parallel()

	f := BuildFromColumns(
		[]string{"x", "y"},
		[][]int{{1, 2, 3}, {10, 20, 30}},
		[]string{"label"},
		[][]string{{"a", "b", "c"}},
	)

	assert.Equal(t, []string{"x", "y"}, f.NumericColumnNames())
	assert.Equal(t, []int{0, 1}, f.NumericColumnPositions())

	want := [][]int{{1, 10}, {2, 20}, {3, 30}}
	if diff := cmp.Diff(want, f.NumericMatrix()); diff != "" {
		t.Errorf("NumericMatrix() mismatch (-want +got):\n%s", diff)
	}
}

func TestFrame_Filter(t *testing.T) {
	t.Parallel()

	t.Run("Numeric predicate filters every column in lock-step", func(t *testing.T) {
		t.Parallel()

		f := sampleFrame()
		got := f.Filter("whoop", GreaterThan, NumericOperand[int32](5))

		want := "frame:\n" +
			"value: [1, 2, 3]\n" +
			"whoop: [14, 54, 7]\n" +
			"kabang: [1a, 2a, 3a]\n" +
			"Num Rows: 3"
		assert.Equal(t, want, got.String())
		assert.Equal(t, 4, f.NumRows(), "source frame must not change")
	})

	t.Run("Discrete predicate", func(t *testing.T) {
		t.Parallel()

		got := sampleFrame().Filter("kabang", Equal, DiscreteOperand[int32]("3a"))
		assert.Equal(t, 1, got.NumRows())
		assert.Equal(t, [][]int32{{3, 7}}, got.NumericMatrix())
	})

	t.Run("Result equals the mask applied to each column", func(t *testing.T) {
		t.Parallel()

		f := BuildFromColumns(
			[]string{"a", "b"},
			[][]int64{{5, 3, 8, 1, 9, 2, 7}, {1, 2, 3, 4, 5, 6, 7}},
			[]string{"c"},
			[][]string{{"p", "q", "r", "s", "t", "u", "v"}},
		)
		ops := []Comparator{Equal, NotEqual, LessThan, LessOrEqual, GreaterThan, GreaterOrEqual}
		for _, op := range ops {
			key, _ := f.Column("a")
			mask := key.FilterMask(op, NumericOperand[int64](5))
			got := f.Filter("a", op, NumericOperand[int64](5))

			trues := 0
			for _, keep := range mask {
				if keep {
					trues++
				}
			}
			require.Equal(t, trues, got.NumRows(), "op %s", op)
			for i := range f.NumCols() {
				assert.Equal(t, f.ColumnAt(i).MaskedView(mask).String(), got.ColumnAt(i).String(), "op %s", op)
				assert.Equal(t, got.NumRows(), got.ColumnAt(i).Len(), "op %s", op)
			}
		}
	})

	t.Run("Absent value yields an empty frame with the same columns", func(t *testing.T) {
		t.Parallel()

		f := sampleFrame()
		got := f.Filter("value", Equal, NumericOperand[int32](99))
		assert.Equal(t, 0, got.NumRows())
		assert.Equal(t, f.Names(), got.Names())
		for _, name := range f.Names() {
			_, ok := got.Column(name)
			assert.True(t, ok, name)
		}
		assert.Equal(t, "frame:\nvalue: []\nwhoop: []\nkabang: []\nNum Rows: 0", got.String())
	})

	t.Run("Filters chain", func(t *testing.T) {
		t.Parallel()

		got := sampleFrame().
			Filter("value", GreaterOrEqual, NumericOperand[int32](2)).
			Filter("whoop", LessThan, NumericOperand[int32](10))
		assert.Equal(t, [][]int32{{3, 7}, {4, 2}}, got.NumericMatrix())
	})

	t.Run("Unknown column", func(t *testing.T) {
		t.Parallel()

		requireViolation(t, ErrColumnNotFound, func() {
			sampleFrame().Filter("nope", Equal, NumericOperand[int32](1))
		})
	})

	t.Run("Operand of the wrong kind", func(t *testing.T) {
		t.Parallel()

		requireViolation(t, ErrOperandMismatch, func() {
			sampleFrame().Filter("value", Equal, DiscreteOperand[int32]("1"))
		})
	})
}

func TestFrame_Range(t *testing.T) {
	t.Parallel()

	f := sampleFrame()
	got := f.Range(1, 3)
	assert.Equal(t, "frame:\nvalue: [2, 3]\nwhoop: [54, 7]\nkabang: [2a, 3a]\nNum Rows: 2", got.String())

	requireViolation(t, ErrOutOfRange, func() {
		f.Range(2, 5)
	})
}

func TestFrame_ColumnAt(t *testing.T) {
	t.Parallel()

	requireViolation(t, ErrOutOfRange, func() {
		sampleFrame().ColumnAt(3)
	})
}

func TestFrame_Table(t *testing.T) {
	t.Parallel()

	table := sampleFrame().Table("sample")
	assert.Equal(t, "sample", table.Name())
	assert.Equal(t, []string{"value", "whoop", "kabang"}, []string(table.Header()))
	require.Len(t, table.Records(), 4)
	assert.Equal(t, []string{"2", "54", "2a"}, []string(table.Records()[1]))
}
