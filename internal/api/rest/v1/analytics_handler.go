package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/domain/analytics"
	"github.com/craneintel/crane-intelligence/internal/domain/common"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler defines the interface for dashboard figures
type AnalyticsHandler interface {
	Dashboard(ctx *gin.Context)
}

type analyticsHandler struct {
	analyticsService analytics.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{
		analyticsService: analyticsService,
	}
}

// Dashboard returns the overview figures for the caller
func (handler *analyticsHandler) Dashboard(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	dashboard, err := handler.analyticsService.Dashboard(ctx, principal.AdminID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newDashboardResponse(dashboard))
}
