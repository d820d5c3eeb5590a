package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreatorHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

func NewCreatorHandler(userService *services.UserService, log *zap.Logger) *CreatorHandler {
	return &CreatorHandler{userService: userService, log: log}
}

// ListCreators is the brand-facing discovery listing of creator profiles.
func (h *CreatorHandler) ListCreators(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)

	filter := repositories.CreatorFilter{Limit: limit, Offset: offset}
	if v := c.Query("niche"); v != "" {
		filter.Niche = &v
	}
	if v := c.Query("platform"); v != "" {
		filter.Platform = &v
	}

	creators, err := h.userService.DiscoverCreators(c.Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: creators})
}
