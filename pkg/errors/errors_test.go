package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsCodeThroughWrapping(t *testing.T) {
	base := Wrap(CodeNotFound, "published site not found", errors.New("blob not found"))
	wrapped := fmt.Errorf("handler: %w", base)

	require.True(t, IsCode(wrapped, CodeNotFound))
	require.False(t, IsCode(wrapped, CodeInvalidInput))
	require.Equal(t, "published site not found: blob not found", base.Error())
}

func TestInvalidHasNoCause(t *testing.T) {
	err := Invalid("prompt cannot be empty")
	require.True(t, IsCode(err, CodeInvalidInput))
	require.Nil(t, errors.Unwrap(err))
	require.Equal(t, "prompt cannot be empty", err.Error())
}
