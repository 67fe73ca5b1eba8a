package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/pkg/errors"
)

func TestAppError(t *testing.T) {
	cause := stderrors.New("title: is marked non-blank but is blank")

	t.Run("message", func(t *testing.T) {
		assert.EqualError(t, errors.BadRequest("bad manifest"), "BAD_REQUEST: bad manifest")
		assert.EqualError(t,
			errors.Wrap(errors.ErrorTypeBadRequest, "video rejected", cause),
			"BAD_REQUEST: video rejected: title: is marked non-blank but is blank")
	})

	t.Run("unwrap", func(t *testing.T) {
		err := errors.Wrap(errors.ErrorTypeBadRequest, "video rejected", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("predicates see through wrapping", func(t *testing.T) {
		err := fmt.Errorf("import: %w", errors.Conflict("duplicate key"))
		assert.True(t, errors.IsConflict(err))
		assert.False(t, errors.IsBadRequest(err))
		assert.Equal(t, errors.ErrorTypeConflict, errors.TypeOf(err))
	})

	t.Run("type of plain error", func(t *testing.T) {
		assert.Equal(t, errors.ErrorTypeInternal, errors.TypeOf(cause))
		assert.True(t, errors.IsNotFound(errors.NotFound("genre")))
		assert.True(t, errors.IsInternal(errors.Internal("boom")))
	})
}
