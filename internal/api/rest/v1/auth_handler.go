package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/admins"
	"github.com/craneintel/crane-intelligence/internal/domain/common"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for admin authentication and session endpoints
type AuthHandler interface {
	Login(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	ListSessions(ctx *gin.Context)
	RevokeSession(ctx *gin.Context)
}

type authHandler struct {
	authService admins.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService admins.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login exchanges credentials for a token pair
func (handler *authHandler) Login(ctx *gin.Context) {
	var request stub.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "email and password are required")
		return
	}

	pair, admin, err := handler.authService.Login(ctx, request.Email, request.Password, admins.ClientMeta{
		UserAgent: ctx.Request.UserAgent(),
		IPAddress: ctx.ClientIP(),
	})
	if err != nil {
		if status, _ := statusFor(err); status == http.StatusUnauthorized {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, stub.ErrorResponse{Message: "invalid email or password"})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stub.LoginResponse{
		TokenResponse: newTokenResponse(pair),
		Admin:         newAdminUserResponse(admin),
	})
}

// Refresh rotates a refresh token
func (handler *authHandler) Refresh(ctx *gin.Context) {
	var request stub.RefreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "refresh_token is required")
		return
	}

	pair, err := handler.authService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTokenResponse(pair))
}

// Logout revokes the session of a refresh token
func (handler *authHandler) Logout(ctx *gin.Context) {
	var request stub.RefreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "refresh_token is required")
		return
	}

	if err := handler.authService.Logout(ctx, request.RefreshToken); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Me returns the authenticated admin
func (handler *authHandler) Me(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	ctx.JSON(http.StatusOK, stub.PrincipalResponse{
		ID:    principal.AdminID,
		Email: principal.Email,
		Role:  principal.Role,
	})
}

// ListSessions lists the caller's refresh sessions, or another admin's for a super admin
func (handler *authHandler) ListSessions(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	adminID := principal.AdminID
	if other := ctx.Query("admin_id"); other != "" && other != adminID {
		if principal.Role != admins.RoleSuperAdmin {
			respondError(ctx, common.ErrForbidden)
			return
		}
		adminID = other
	}

	sessions, err := handler.authService.ListSessions(ctx, adminID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]stub.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, newSessionResponse(session))
	}
	ctx.JSON(http.StatusOK, response)
}

// RevokeSession revokes one session. Admins other than super admins may only revoke their own.
func (handler *authHandler) RevokeSession(ctx *gin.Context) {
	principal := currentPrincipal(ctx)
	if principal == nil {
		respondError(ctx, common.ErrUnauthorized)
		return
	}

	sessionID := ctx.Param("id")

	if principal.Role != admins.RoleSuperAdmin {
		sessions, err := handler.authService.ListSessions(ctx, principal.AdminID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		owned := false
		for _, session := range sessions {
			if session.ID == sessionID {
				owned = true
				break
			}
		}
		if !owned {
			respondError(ctx, common.ErrNotFound)
			return
		}
	}

	if err := handler.authService.RevokeSession(ctx, sessionID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
