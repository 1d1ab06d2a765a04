package v1

import (
	"errors"
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/common"

	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status and the message shown to the caller.
// Unexpected errors keep their details out of the response.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, common.ErrLocked):
		return http.StatusForbidden, "account locked after too many failed logins"
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, "insufficient permissions"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrInvalidTransition):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondError aborts the request with the mapped status and an ErrorResponse body
func respondError(ctx *gin.Context, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
	}
	ctx.AbortWithStatusJSON(status, stub.ErrorResponse{Message: message})
}

// respondBadRequest aborts with 400 and message
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, stub.ErrorResponse{Message: message})
}
