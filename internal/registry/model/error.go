package model

import (
	"net/http"
	"time"
)

// ErrorResponse is the uniform body returned on every non-success response.
type ErrorResponse struct {
	HTTPCode   int       `json:"httpCode"`
	HTTPText   string    `json:"httpText"`
	Message    string    `json:"message"`
	MessageKey string    `json:"messageKey"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewErrorResponse builds the error body for the given status and key.
func NewErrorResponse(status int, message string, key MessageKey) ErrorResponse {
	return ErrorResponse{
		HTTPCode:   status,
		HTTPText:   http.StatusText(status),
		Message:    message,
		MessageKey: string(key),
		Timestamp:  time.Now().UTC(),
	}
}

// FieldError is the typed failure request DTOs return from Validate.
// It satisfies error so validation can fail fast through normal returns.
type FieldError struct {
	Key     MessageKey
	Message string
}

func (e *FieldError) Error() string { return e.Message }
