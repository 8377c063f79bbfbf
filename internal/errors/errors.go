package errors

import (
	"fmt"
	"time"
)

// ErrorCode код ошибки внешнего окружения анализа
type ErrorCode string

const (
	ErrorDecodeFailed        ErrorCode = "DECODE_FAILED"
	ErrorEmptyImage          ErrorCode = "EMPTY_IMAGE"
	ErrorRenderFailed        ErrorCode = "RENDER_FAILED"
	ErrorReadFailed          ErrorCode = "READ_FAILED"
	ErrorWriteFailed         ErrorCode = "WRITE_FAILED"
	ErrorDetectorUnavailable ErrorCode = "DETECTOR_UNAVAILABLE"
)

// InspectionError ошибка, из-за которой изображение не дошло до анализа
// или результат не удалось сохранить. Итоги анализа (Good/Defective/Error)
// ошибками не являются.
type InspectionError struct {
	Code      ErrorCode
	Message   string
	Source    string
	Timestamp time.Time
	Cause     error
}

func (e *InspectionError) Error() string {
	src := ""
	if e.Source != "" {
		src = fmt.Sprintf(" [%s]", e.Source)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", e.Code, src, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", e.Code, src, e.Message)
}

func (e *InspectionError) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду.
func (e *InspectionError) Is(target error) bool {
	t, ok := target.(*InspectionError)
	return ok && t.Code == e.Code
}

func newError(code ErrorCode, source, message string, cause error) *InspectionError {
	return &InspectionError{
		Code:      code,
		Message:   message,
		Source:    source,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

func NewDecodeFailedError(source string, cause error) *InspectionError {
	return newError(ErrorDecodeFailed, source, "failed to decode image", cause)
}

func NewEmptyImageError(source string) *InspectionError {
	return newError(ErrorEmptyImage, source, "empty image", nil)
}

func NewRenderFailedError(source string, cause error) *InspectionError {
	return newError(ErrorRenderFailed, source, "failed to render result", cause)
}

func NewReadFailedError(source string, cause error) *InspectionError {
	return newError(ErrorReadFailed, source, "failed to read image", cause)
}

func NewWriteFailedError(source string, cause error) *InspectionError {
	return newError(ErrorWriteFailed, source, "failed to write result", cause)
}

func NewDetectorUnavailableError() *InspectionError {
	return newError(ErrorDetectorUnavailable, "", "detector is not configured", nil)
}

// Sentinel-значения для errors.Is.
var (
	ErrDecodeFailed        = &InspectionError{Code: ErrorDecodeFailed}
	ErrEmptyImage          = &InspectionError{Code: ErrorEmptyImage}
	ErrRenderFailed        = &InspectionError{Code: ErrorRenderFailed}
	ErrReadFailed          = &InspectionError{Code: ErrorReadFailed}
	ErrWriteFailed         = &InspectionError{Code: ErrorWriteFailed}
	ErrDetectorUnavailable = &InspectionError{Code: ErrorDetectorUnavailable}
)
