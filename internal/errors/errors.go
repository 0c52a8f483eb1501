package errors

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevaluacion/project-management-api/pkg/logger"
)

// Kind classifies a domain error so the boundary layer can map it to an
// HTTP status without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindInvalidCredentials
	KindUnexpected
)

// Error is the typed error raised by services and repositories.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validationf creates a validation error for malformed or missing input.
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf creates an error for an id, email or username that does not resolve.
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unexpectedf wraps an uncategorized failure.
func Unexpectedf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnexpected, Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidCredentials is deliberately generic so it does not leak which
// factor of the login failed.
var ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid credentials"}

// ErrorResponse is the structured body returned for every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// Respond converts a domain error into a structured HTTP response. Raw
// internal details are logged, never returned to the client.
func Respond(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Unexpected error"

	if e, ok := err.(*Error); ok {
		switch e.Kind {
		case KindValidation:
			status = http.StatusBadRequest
			message = e.Message
		case KindNotFound:
			status = http.StatusNotFound
			message = e.Message
		case KindInvalidCredentials:
			status = http.StatusUnauthorized
			message = e.Message
		default:
			logger.Error().Err(err).Msg("unexpected error")
		}
	} else {
		logger.Error().Err(err).Msg("unexpected error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

// BadRequest responds with a 400 for request bodies that fail binding.
func BadRequest(c *gin.Context, message string) {
	Respond(c, Validationf("%s", message))
}

// Unauthorized responds with a 401 for requests lacking a valid identity.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusUnauthorized,
		Error:     http.StatusText(http.StatusUnauthorized),
		Message:   message,
	})
}
