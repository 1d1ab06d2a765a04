package v1

import (
	"net/http"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"
	"github.com/craneintel/crane-intelligence/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 65536
)

// WebhookHandler defines the interface for payment provider webhooks
type WebhookHandler interface {
	Stripe(ctx *gin.Context)
}

type webhookHandler struct {
	webhookService payments.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookService payments.WebhookService) WebhookHandler {
	return &webhookHandler{
		webhookService: webhookService,
	}
}

// Stripe always answers 200 so Stripe does not retry; the outcome is in the body
func (handler *webhookHandler) Stripe(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBodyBytes)

	payload, err := ctx.GetRawData()
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusOK, stub.WebhookResponse{Received: true, Status: payments.EventRejected})
		return
	}

	result := handler.webhookService.HandleStripe(ctx, payload, ctx.GetHeader(stripeSignatureHeader))
	ctx.JSON(http.StatusOK, stub.WebhookResponse{Received: true, Status: result.Status})
}
