package utils

import (
	"fmt"
	"net/http"
)

// AppError is the error shape the HTTP boundary knows how to render.
// Services translate domain errors into one of these; anything else is
// treated as an internal error.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

// NewBadGatewayError reports an upstream provider failure.
func NewBadGatewayError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusBadGateway, Message: message, Err: err}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}
