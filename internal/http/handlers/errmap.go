package handlers

import (
	"errors"

	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps the service error taxonomy to HTTP statuses. Anything
// outside the taxonomy is an internal failure and is not leaked to clients.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	reqID, _ := c.Locals(middleware.CtxRequestID).(string)

	var status int
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateProposal), errors.Is(err, services.ErrInvalidTransition):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrCampaignNotOpen):
		status = fiber.StatusUnprocessableEntity
	default:
		log.Error("request failed",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:     "internal error",
			RequestID: reqID,
		})
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), RequestID: reqID})
}
