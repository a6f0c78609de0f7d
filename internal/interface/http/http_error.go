package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// HTTPError is the transport view of a failure: status, stable code and a
// client-safe message.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// statusByCode maps pkg/errors codes onto HTTP statuses.
var statusByCode = map[string]int{
	apperrors.CodeInvalidInput:       http.StatusBadRequest,
	apperrors.CodeMalformedArguments: http.StatusBadRequest,
	apperrors.CodeUnknownAction:      http.StatusBadRequest,
	apperrors.CodeServiceUnavailable: http.StatusServiceUnavailable,
	apperrors.CodeCorpus:             http.StatusServiceUnavailable,
	apperrors.CodeLLM:                http.StatusBadGateway,
	apperrors.CodeEmbedding:          http.StatusBadGateway,
	apperrors.CodeUpstream:           http.StatusBadGateway,
	apperrors.CodeStorage:            http.StatusInternalServerError,
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status, ok := statusByCode[appErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		return &HTTPError{Status: status, Code: appErr.Code, Message: appErr.Message, Err: err}
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
