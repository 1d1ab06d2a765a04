package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for customer account administration
type UserHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{
		userService: userService,
	}
}

// Create registers a customer account
func (handler *userHandler) Create(ctx *gin.Context) {
	var input users.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid user data")
		return
	}

	user, err := handler.userService.Create(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// List fetches users; deleted accounts only show when filtering by status=deleted
func (handler *userHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.Email = ctx.Query("email")
	query.Status = ctx.Query("status")
	query.SubscriptionTier = ctx.Query("subscription_tier")
	query.Search = ctx.Query("search")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.userService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newUserResponse))
}

// GetByID fetches a user by ID
func (handler *userHandler) GetByID(ctx *gin.Context) {
	user, err := handler.userService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// Update applies a partial update
func (handler *userHandler) Update(ctx *gin.Context) {
	var input users.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid user data")
		return
	}

	user, err := handler.userService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteByID soft-deletes a user
func (handler *userHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.userService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
