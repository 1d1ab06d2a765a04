package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/audit"
	"github.com/craneintel/crane-intelligence/internal/domain/common"
	"github.com/craneintel/crane-intelligence/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const principalKey = "admin_principal"

// ErrorLogger logs the errors handlers attached to the request
func ErrorLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		for _, ginErr := range ctx.Errors {
			log.Error("Request failed",
				"method", ctx.Request.Method,
				"path", ctx.Request.URL.Path,
				"status", ctx.Writer.Status(),
				"error", ginErr.Err)
		}
	}
}

// Authenticate requires a valid bearer access token and stores the principal on the context
func Authenticate(authService admins.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(ctx, fmt.Errorf("%w: missing bearer token", common.ErrUnauthorized))
			return
		}

		principal, err := authService.Authenticate(ctx, strings.TrimSpace(token))
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// currentPrincipal returns the authenticated admin; it is only nil outside Authenticate
func currentPrincipal(ctx *gin.Context) *admins.Principal {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := value.(*admins.Principal)
	return principal
}

// RequireWrite rejects read-only roles
func RequireWrite() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal := currentPrincipal(ctx)
		if principal == nil || !admins.CanWrite(principal.Role) {
			respondError(ctx, common.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

// RequireRole admits only the listed roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal := currentPrincipal(ctx)
		if principal != nil {
			for _, role := range roles {
				if principal.Role == role {
					ctx.Next()
					return
				}
			}
		}
		respondError(ctx, common.ErrForbidden)
	}
}

// Audit records every mutating request of an authenticated admin once it has been handled
func Audit(auditService audit.AuditService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		switch ctx.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			ctx.Next()
			return
		}

		ctx.Next()

		principal := currentPrincipal(ctx)
		if principal == nil {
			return
		}

		entry := &audit.Entry{
			AdminID:    principal.AdminID,
			AdminEmail: principal.Email,
			Action:     ctx.Request.Method,
			Resource:   ctx.Request.URL.Path,
			StatusCode: ctx.Writer.Status(),
			IPAddress:  ctx.ClientIP(),
			UserAgent:  ctx.Request.UserAgent(),
		}
		if err := auditService.Record(ctx, entry); err != nil {
			_ = ctx.Error(fmt.Errorf("failed to record audit entry: %w", err))
		}
	}
}
