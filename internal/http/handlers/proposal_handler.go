package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
	log             *zap.Logger
}

func NewProposalHandler(proposalService *services.ProposalService, log *zap.Logger) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService, log: log}
}

func (h *ProposalHandler) SubmitProposal(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.SubmitProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid rate"})
	}

	proposal, err := h.proposalService.Submit(c.Context(), middleware.GetUserID(c), campaignID, services.SubmitProposalInput{
		Pitch: req.Pitch,
		Rate:  rate,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: proposal})
}

func (h *ProposalHandler) AcceptProposal(c *fiber.Ctx) error {
	return h.decide(c, models.ProposalStatusAccepted)
}

func (h *ProposalHandler) RejectProposal(c *fiber.Ctx) error {
	return h.decide(c, models.ProposalStatusRejected)
}

func (h *ProposalHandler) ReviewProposal(c *fiber.Ctx) error {
	return h.decide(c, models.ProposalStatusReviewing)
}

func (h *ProposalHandler) decide(c *fiber.Ctx, status string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid proposal id"})
	}

	proposal, err := h.proposalService.Decide(c.Context(), middleware.GetUserID(c), id, status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: proposal})
}
