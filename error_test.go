package causelist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/causelist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := causelist.Errorf(causelist.EINVALID, "query %q is empty", "cnr")

	assert.Equal(t, causelist.EINVALID, causelist.ErrorCode(err))
	assert.Equal(t, "query \"cnr\" is empty", causelist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, causelist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, causelist.ErrorMessage(nil))
}

func TestErrorCode_UnwrapsWrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", causelist.Errorf(causelist.EUNAVAILABLE, "no document"))

	assert.Equal(t, causelist.EUNAVAILABLE, causelist.ErrorCode(err))
	assert.Equal(t, "no document", causelist.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, causelist.EINTERNAL, causelist.ErrorCode(err))
	assert.Equal(t, "Internal error.", causelist.ErrorMessage(err))
}
