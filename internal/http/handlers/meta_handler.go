package handlers

import (
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaNiche struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MetaPlatform struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedNiches = []MetaNiche{
	{ID: "fashion", Label: "Fashion & Apparel"},
	{ID: "beauty", Label: "Beauty & Skincare"},
	{ID: "tech", Label: "Technology"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "fitness", Label: "Health & Fitness"},
	{ID: "food", Label: "Food & Cooking"},
	{ID: "travel", Label: "Travel"},
	{ID: "finance", Label: "Finance"},
	{ID: "education", Label: "Education"},
	{ID: "lifestyle", Label: "Lifestyle"},
	{ID: "parenting", Label: "Parenting & Family"},
	{ID: "music", Label: "Music"},
	{ID: "art", Label: "Art & Design"},
	{ID: "sports", Label: "Sports"},
	{ID: "home", Label: "Home & Decor"},
	{ID: "other", Label: "Other"},
}

var predefinedPlatforms = []MetaPlatform{
	{ID: "instagram", Label: "Instagram"},
	{ID: "tiktok", Label: "TikTok"},
	{ID: "youtube", Label: "YouTube"},
	{ID: "twitter", Label: "X (Twitter)"},
	{ID: "twitch", Label: "Twitch"},
	{ID: "facebook", Label: "Facebook"},
	{ID: "linkedin", Label: "LinkedIn"},
	{ID: "podcast", Label: "Podcast"},
	{ID: "blog", Label: "Blog / Newsletter"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetNiches(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedNiches})
}

func (h *MetaHandler) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedPlatforms})
}
