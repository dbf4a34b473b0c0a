package handler

import (
	"context"

	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CandidateUsecase interface {
	Import(ctx context.Context, req dto.CandidateImportRequest) (*model.Candidate, error)
	Search(ctx context.Context, role, skills, experienceYears string) ([]model.Candidate, error)
	Get(ctx context.Context, id string) (*model.Candidate, error)
}

type CandidateHandler struct {
	uc CandidateUsecase
}

func NewCandidateHandler(uc CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/candidates")
	g.Get("/search", h.Search)
	g.Post("/import", h.Import)
	g.Get("/:id", h.Get)
}

func (h *CandidateHandler) Search(c *fiber.Ctx) error {
	candidates, err := h.uc.Search(c.UserContext(), c.Query("role"), c.Query("skills"), c.Query("experience_years"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	if len(candidates) == 0 {
		return util.NotFoundResponse(c, "No candidates found matching the criteria.")
	}

	data := make([]dto.CandidateSearchResponse, 0, len(candidates))
	for _, candidate := range candidates {
		data = append(data, dto.NewCandidateSearchResponse(candidate))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search candidates",
		Data:    data,
		Meta:    fiber.Map{"count": len(data)},
	})
}

func (h *CandidateHandler) Import(c *fiber.Ctx) error {
	var req dto.CandidateImportRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	candidate, err := h.uc.Import(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Candidate(s) imported successfully.",
		Data:    dto.ImportResponse{ID: candidate.ID, ImportedCount: 1},
	})
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	candidate, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    candidate,
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "Invalid request body.",
	}, err)
}
