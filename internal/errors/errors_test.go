package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspectionError_IsAndUnwrap(t *testing.T) {
	err := fmt.Errorf("inspect: %w", NewDecodeFailedError("a.png", io.ErrUnexpectedEOF))

	require.True(t, stderrors.Is(err, ErrDecodeFailed))
	require.False(t, stderrors.Is(err, ErrEmptyImage))
	require.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))

	var ie *InspectionError
	require.True(t, stderrors.As(err, &ie))
	require.Equal(t, "a.png", ie.Source)
}

func TestInspectionError_Message(t *testing.T) {
	require.Equal(t, "EMPTY_IMAGE [b.png]: empty image", NewEmptyImageError("b.png").Error())
	require.Equal(t, "DETECTOR_UNAVAILABLE: detector is not configured", NewDetectorUnavailableError().Error())
	require.Contains(t, NewWriteFailedError("c", io.EOF).Error(), "caused by: EOF")
}
