package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/reports"

	"github.com/gin-gonic/gin"
)

// ReportHandler defines the interface for FMV report orders
type ReportHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type reportHandler struct {
	reportService reports.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService reports.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

// Submit records a customer's report order awaiting payment
func (handler *reportHandler) Submit(ctx *gin.Context) {
	var input reports.SubmitReportInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid report request")
		return
	}

	report, err := handler.reportService.Submit(ctx, &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newReportResponse(report))
}

// List fetches reports optionally filtered by user, status, type and crane make
func (handler *reportHandler) List(ctx *gin.Context) {
	query := reports.NewReportQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.UserID = ctx.Query("user_id")
	query.Status = ctx.Query("status")
	query.ReportType = ctx.Query("report_type")
	query.CraneMake = ctx.Query("crane_make")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.reportService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newReportResponse))
}

// GetByID fetches a report by ID
func (handler *reportHandler) GetByID(ctx *gin.Context) {
	report, err := handler.reportService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newReportResponse(report))
}

// Update applies an operator's partial update
func (handler *reportHandler) Update(ctx *gin.Context) {
	var input reports.UpdateReportInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, "invalid report data")
		return
	}

	report, err := handler.reportService.Update(ctx, ctx.Param("id"), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newReportResponse(report))
}

// UpdateStatus moves a report along its lifecycle; forbidden moves answer 409
func (handler *reportHandler) UpdateStatus(ctx *gin.Context) {
	var request stub.StatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "status is required")
		return
	}

	report, err := handler.reportService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newReportResponse(report))
}

// DeleteByID deletes a report by ID
func (handler *reportHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.reportService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
