package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/domain/admins"

	"github.com/gin-gonic/gin"
)

// AdminUserHandler defines the interface for operator account management
type AdminUserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Update(ctx *gin.Context)
}

type adminUserHandler struct {
	adminService admins.AdminService
}

// NewAdminUserHandler creates a new AdminUserHandler
func NewAdminUserHandler(adminService admins.AdminService) AdminUserHandler {
	return &adminUserHandler{
		adminService: adminService,
	}
}

// Create adds an operator account
func (handler *adminUserHandler) Create(ctx *gin.Context) {
	var input admins.CreateAdminInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid admin data")
		return
	}

	admin, err := handler.adminService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAdminUserResponse(admin))
}

// List fetches operator accounts optionally filtered by role
func (handler *adminUserHandler) List(ctx *gin.Context) {
	query := admins.NewAdminQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.Role = ctx.Query("role")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.adminService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newAdminUserResponse))
}

// Update changes an operator's name, role, activation or password
func (handler *adminUserHandler) Update(ctx *gin.Context) {
	var input admins.UpdateAdminInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid admin data")
		return
	}

	admin, err := handler.adminService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAdminUserResponse(admin))
}
