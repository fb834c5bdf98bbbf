package errno

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, Success, ConvertErr(nil))
	})

	t.Run("wrapped errno keeps its code", func(t *testing.T) {
		err := errors.WithMessage(NotFoundErr.WithMessage("Video not found"), "dao.GetVideo failed")
		e := ConvertErr(err)
		assert.EqualValues(t, 404, e.ErrCode)
		assert.Equal(t, "Video not found", e.ErrMsg)
	})

	t.Run("fmt wrapped errno keeps its code", func(t *testing.T) {
		e := ConvertErr(fmt.Errorf("toggle: %w", RequestErr))
		assert.EqualValues(t, 400, e.ErrCode)
	})

	t.Run("plain error becomes service error", func(t *testing.T) {
		e := ConvertErr(errors.WithMessage(errors.New("Error 1054: Unknown column 'x'"), "dao.ListVideos failed"))
		assert.EqualValues(t, 500, e.ErrCode)
		assert.Equal(t, "Internal server error", e.ErrMsg)
		assert.NotContains(t, e.ErrMsg, "dao")
	})
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	_ = RequestErr.WithMessage("content is missing")
	assert.Equal(t, "Wrong Parameter has been given", RequestErr.ErrMsg)
}
