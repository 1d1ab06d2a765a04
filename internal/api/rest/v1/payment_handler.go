package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// PaymentHandler defines the interface for read access to payments
type PaymentHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type paymentHandler struct {
	paymentService payments.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService payments.PaymentService) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
	}
}

// List fetches payments optionally filtered by status, user and report
func (handler *paymentHandler) List(ctx *gin.Context) {
	query := payments.NewPaymentQuery()
	if err := bindPage(ctx, &query.Page); err != nil {
		respondError(ctx, err)
		return
	}
	query.Status = ctx.Query("status")
	query.UserID = ctx.Query("user_id")
	query.ReportID = ctx.Query("report_id")

	if err := query.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	list, total, err := handler.paymentService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listResponse(list, total, query.Page, newPaymentResponse))
}

// GetByID fetches a payment by ID
func (handler *paymentHandler) GetByID(ctx *gin.Context) {
	payment, err := handler.paymentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPaymentResponse(payment))
}
