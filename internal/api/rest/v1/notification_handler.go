package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// NotificationHandler defines the interface for the caller's notifications
type NotificationHandler interface {
	List(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkAllRead(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

// List fetches the caller's own and broadcast notifications; unread=true hides read ones
func (handler *notificationHandler) List(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	query := notifications.NewNotificationQuery(principal.AdminID)
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.UnreadOnly = ctx.Query("unread") == "true"
	query.Kind = ctx.Query("kind")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.notificationService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newNotificationResponse))
}

// MarkRead marks one visible notification as read
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	if err := handler.notificationService.MarkRead(ctx, principal.AdminID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkAllRead marks every visible notification as read
func (handler *notificationHandler) MarkAllRead(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	updated, err := handler.notificationService.MarkAllRead(ctx, principal.AdminID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stub.ReadAllResponse{Updated: updated})
}
