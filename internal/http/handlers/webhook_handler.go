package handlers

import (
	"context"
	"errors"

	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentProcessor is the slice of the payment service the webhook route
// needs.
type PaymentProcessor interface {
	ProcessWebhook(ctx context.Context, body []byte, signature string) error
}

type WebhookHandler struct {
	paymentService PaymentProcessor
	log            *zap.Logger
}

func NewWebhookHandler(paymentService PaymentProcessor, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{paymentService: paymentService, log: log}
}

// HandlePaystack receives provider webhook deliveries. The raw request body
// is passed through untouched so the signature check runs over the exact
// bytes the provider signed. Every accepted delivery, including replays of
// already settled events, is acknowledged with 200 so the provider stops
// retrying; 401 means the signature failed and 500 asks for a retry.
func (h *WebhookHandler) HandlePaystack(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("x-paystack-signature")

	err := h.paymentService.ProcessWebhook(c.Context(), body, signature)
	switch {
	case err == nil:
		return c.JSON(dto.WebhookAckResponse{Received: true})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid signature"})
	default:
		reqID, _ := c.Locals(middleware.CtxRequestID).(string)
		h.log.Error("webhook processing failed", zap.String("request_id", reqID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:     "webhook processing failed",
			RequestID: reqID,
		})
	}
}
