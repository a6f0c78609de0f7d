package errors

import "errors"

// Error codes shared by the pipeline and the transport layer.
const (
	CodeInvalidInput       = "invalid_input"
	CodeLLM                = "llm_error"
	CodeEmbedding          = "embedding_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeUpstream           = "upstream_error"
	CodeUnknownAction      = "unknown_action"
	CodeMalformedArguments = "malformed_arguments"
	CodeStorage            = "storage_error"
	CodeCorpus             = "corpus_error"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode helps handler differentiate failures.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the outermost AppError code, or "" when err carries none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
