package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/domain/audit"

	"github.com/gin-gonic/gin"
)

// AuditHandler defines the interface for browsing the audit log
type AuditHandler interface {
	List(ctx *gin.Context)
}

type auditHandler struct {
	auditService audit.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandler{
		auditService: auditService,
	}
}

// List fetches audit entries optionally filtered by admin, HTTP method and start time
func (handler *auditHandler) List(ctx *gin.Context) {
	query := audit.NewEntryQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.AdminID = ctx.Query("admin_id")
	query.Action = ctx.Query("action")

	since, err := queryTime(ctx, "since")
	if err != nil {
		respondError(ctx, err)
		return
	}
	query.Since = since

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.auditService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newAuditLogResponse))
}
