package colframe

import (
	"io/fs"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctx       *ErrorContext
		base      error
		wantMsg   string
		wantMarks []error
	}{
		{
			name:    "Operation only",
			ctx:     NewErrorContext("query", ""),
			base:    nil,
			wantMsg: "colframe: query failed",
		},
		{
			name:    "With file and details",
			ctx:     NewErrorContext("read", "data.csv").WithDetails("CSV"),
			base:    errors.New("boom"),
			wantMsg: "colframe: read failed, file: data.csv, details: CSV: boom",
		},
		{
			name:      "Missing file is marked",
			ctx:       NewErrorContext("read", "gone.csv"),
			base:      &fs.PathError{Op: "open", Path: "gone.csv", Err: fs.ErrNotExist},
			wantMsg:   "colframe: read failed, file: gone.csv: open gone.csv: file does not exist",
			wantMarks: []error{ErrFileNotFound, fs.ErrNotExist},
		},
		{
			name:      "Permission problem is marked",
			ctx:       NewErrorContext("write", "locked.csv"),
			base:      &fs.PathError{Op: "open", Path: "locked.csv", Err: fs.ErrPermission},
			wantMsg:   "colframe: write failed, file: locked.csv: open locked.csv: permission denied",
			wantMarks: []error{ErrPermissionDenied, fs.ErrPermission},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ctx.Error(tt.base)
			assert.EqualError(t, err, tt.wantMsg)
			for _, mark := range tt.wantMarks {
				assert.ErrorIs(t, err, mark)
			}
			assert.False(t, errors.HasAssertionFailure(err))
		})
	}
}

func TestViolation(t *testing.T) {
	t.Parallel()

	err := violation(ErrOutOfRange, "index %d", 7)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.True(t, errors.HasAssertionFailure(err))
	assert.Contains(t, err.Error(), "index 7")
}
