package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErrors(t *testing.T) {
	t.Run(`kind survives wrapping`, func(t *testing.T) {
		err := errors.Wrap(NewNotFound("vacancy not found"), "decide")
		require.True(t, Is(err, KindNotFound))
		require.False(t, Is(err, KindValidation))
		require.Equal(t, "vacancy not found", Message(err))
	})

	t.Run(`transient keeps cause`, func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Transient(cause, "failed to load vacancy")
		require.True(t, Is(err, KindTransient))
		require.Equal(t, cause, errors.Cause(err))
		require.Equal(t, "failed to load vacancy", Message(err))
		require.Nil(t, Transient(nil, "noop"))
	})

	t.Run(`plain error has unknown kind`, func(t *testing.T) {
		err := errors.New("boom")
		require.Equal(t, KindUnknown, KindOf(err))
		require.Equal(t, "boom", Message(err))
		require.False(t, Is(nil, KindUnknown))
	})
}
