package handlers

import (
	"strconv"

	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

func NewUserHandler(userService *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *UserHandler) ListNotifications(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	notifications, err := h.userService.ListNotifications(c.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: notifications})
}

func (h *UserHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid notification id"})
	}
	if err := h.userService.MarkNotificationRead(c.Context(), id, middleware.GetUserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func paginationParams(c *fiber.Ctx) (limit, offset int) {
	limit, offset = 20, 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
