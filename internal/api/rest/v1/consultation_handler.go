package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/domain/consultations"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler defines the interface for consultation requests
type ConsultationHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type consultationHandler struct {
	consultationService consultations.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler
func NewConsultationHandler(consultationService consultations.ConsultationService) ConsultationHandler {
	return &consultationHandler{
		consultationService: consultationService,
	}
}

// Submit stores a request from the public consultation form
func (handler *consultationHandler) Submit(ctx *gin.Context) {
	var input consultations.SubmitInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid consultation request")
		return
	}

	request, err := handler.consultationService.Submit(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newConsultationResponse(request))
}

// List fetches consultation requests optionally filtered by status, assignee and email
func (handler *consultationHandler) List(ctx *gin.Context) {
	query := consultations.NewConsultationQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.Status = ctx.Query("status")
	query.AssignedTo = ctx.Query("assigned_to")
	query.Email = ctx.Query("email")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.consultationService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newConsultationResponse))
}

// GetByID fetches a consultation request by ID
func (handler *consultationHandler) GetByID(ctx *gin.Context) {
	request, err := handler.consultationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newConsultationResponse(request))
}

// Update applies an operator's partial update
func (handler *consultationHandler) Update(ctx *gin.Context) {
	var input consultations.UpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid consultation data")
		return
	}

	request, err := handler.consultationService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newConsultationResponse(request))
}

// DeleteByID deletes a consultation request by ID
func (handler *consultationHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.consultationService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
