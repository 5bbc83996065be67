package colframe

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireViolation runs fn and checks that it panics with a contract
// violation wrapping target.
func requireViolation(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
		assert.True(t, errors.HasAssertionFailure(err), "expected an assertion failure, got %v", err)
	}()
	fn()
}
