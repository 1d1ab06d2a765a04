package v1

import (
	"context"
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency the API needs is reachable
type HealthCheck func(ctx context.Context) error

// HealthHandler defines the interface for the liveness endpoint
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	environment string
	check       HealthCheck
}

// NewHealthHandler creates a new HealthHandler; check may be nil
func NewHealthHandler(environment string, check HealthCheck) HealthHandler {
	return &healthHandler{
		environment: environment,
		check:       check,
	}
}

// Health answers 200 while the service and its database are reachable
func (handler *healthHandler) Health(ctx *gin.Context) {
	if handler.check != nil {
		if err := handler.check(ctx); err != nil {
			_ = ctx.Error(err)
			ctx.JSON(http.StatusServiceUnavailable, stub.HealthResponse{Status: "unavailable", Environment: handler.environment})
			return
		}
	}

	ctx.JSON(http.StatusOK, stub.HealthResponse{Status: "ok", Environment: handler.environment})
}
