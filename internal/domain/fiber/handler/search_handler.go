package handler

import (
	"context"
	"time"

	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/middleware"
	"github.com/fadilmartias/hr-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SearchUsecase interface {
	ParseDescription(ctx context.Context, description string) (*dto.SearchDescriptionParseResponse, error)
}

type SearchHandler struct {
	uc SearchUsecase
}

func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/search")
	g.Post("/parse-description", middleware.RateLimiter(20, time.Minute), h.ParseDescription)
}

func (h *SearchHandler) ParseDescription(c *fiber.Ctx) error {
	var req dto.SearchDescriptionParseRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	parsed, err := h.uc.ParseDescription(c.UserContext(), req.Description)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success parse description",
		Data:    parsed,
	})
}
