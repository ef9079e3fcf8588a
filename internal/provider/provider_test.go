package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorWrapsCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := &Error{Op: "answer", Err: cause}

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Contains(t, err.Error(), "answer")

	var pErr *Error
	require.True(t, errors.As(error(err), &pErr))
	require.Equal(t, "answer", pErr.Op)
}
