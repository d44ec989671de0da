package apperror

import "net/http"

// Invalid builds a 400 with a caller-supplied message.
func Invalid(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

// NotFound builds a 404 with a caller-supplied message.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Conflict builds a 409 with a caller-supplied message.
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// Internal wraps a datastore/driver error into a 500.
func Internal(err error, message string) *AppError {
	return Wrap(err, CodeInternalError, message, http.StatusInternalServerError)
}
