package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

func NewAuthHandler(userService *services.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, log: log}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	input := services.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Role:        req.Role,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Bio:         req.Bio,
		Niches:      req.Niches,
		Platforms:   req.Platforms,
	}
	if req.BaseRate != "" {
		rate, err := decimal.NewFromString(req.BaseRate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid base_rate"})
		}
		input.BaseRate = rate
	}

	result, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: result.Token, User: result.User})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	result, err := h.userService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.AuthResponse{Token: result.Token, User: result.User})
}
