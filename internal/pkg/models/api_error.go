package models

import "net/http"

// APIError is the machine-readable failure descriptor used across the
// service. Status carries the HTTP status the handler layer should answer
// with; Details carries an upstream body excerpt when one exists.
type APIError struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func Unauthenticated(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, message)
}

func NotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

func Conflict(message string) *APIError {
	return NewAPIError(http.StatusConflict, message)
}

func ValidationError(message string, details interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Details: details}
}

func UpstreamUnavailable(message string) *APIError {
	return NewAPIError(http.StatusServiceUnavailable, message)
}

// AsAPIError normalizes any error into an APIError, defaulting to a 500.
func AsAPIError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(http.StatusInternalServerError, err.Error())
}
