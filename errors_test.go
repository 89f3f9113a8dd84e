package policyscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/policyscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", policyscan.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := policyscan.Errorf(policyscan.EINVALID, "bad input")
		assert.Equal(t, policyscan.EINVALID, policyscan.ErrorCode(err))
		assert.Equal(t, "bad input", policyscan.ErrorMessage(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", policyscan.Errorf(policyscan.ENOTFOUND, "missing"))
		assert.Equal(t, policyscan.ENOTFOUND, policyscan.ErrorCode(err))
		assert.Equal(t, "missing", policyscan.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		assert.Equal(t, policyscan.EINTERNAL, policyscan.ErrorCode(err))
		assert.Equal(t, "Internal error.", policyscan.ErrorMessage(err))
	})
}
