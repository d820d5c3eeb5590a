package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	proposalService *services.ProposalService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, proposalService *services.ProposalService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, proposalService: proposalService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	budget, err := decimal.NewFromString(req.Budget)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid budget"})
	}

	campaign, err := h.campaignService.Create(c.Context(), middleware.GetUserID(c), services.CreateCampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		Budget:       budget,
		Deadline:     req.Deadline,
		Niche:        req.Niche,
		Platforms:    req.Platforms,
		Requirements: req.Requirements,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// ListCampaigns is the public discovery listing of ACTIVE campaigns.
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)

	var niche *string
	if v := c.Query("niche"); v != "" {
		niche = &v
	}

	campaigns, err := h.campaignService.ListActive(c.Context(), niche, limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	campaign, err := h.campaignService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) UpdateCampaignStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	campaign, err := h.campaignService.UpdateStatus(c.Context(), middleware.GetUserID(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// ListCampaignProposals returns a campaign's proposals ranked by score.
func (h *CampaignHandler) ListCampaignProposals(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	proposals, err := h.proposalService.ListForCampaign(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: proposals})
}
