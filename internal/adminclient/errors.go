package adminclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned when the access token was rejected and could not be refreshed.
// The token store has been cleared by the time a caller sees it.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a non-2xx response of the admin API
type APIError struct {
	StatusCode int
	// Message is safe to show to an operator
	Message string
	// ServerMessage is the message field of the response body, if any
	ServerMessage string
}

func (e *APIError) Error() string {
	if e.ServerMessage == "" || e.ServerMessage == e.Message {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, e.ServerMessage)
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

func genericMessage(statusCode int) string {
	switch {
	case statusCode == http.StatusUnauthorized:
		return "Your session has expired. Please log in again."
	case statusCode == http.StatusForbidden:
		return "You do not have permission to perform this action."
	case statusCode == http.StatusNotFound:
		return "The requested resource was not found."
	case statusCode >= http.StatusInternalServerError:
		return "Server error. Please try again later."
	default:
		return "The request could not be completed."
	}
}
