package handler

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/fadilmartias/hr-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type VacancyUsecase interface {
	Import(ctx context.Context, req dto.VacancyImportRequest) (*model.Vacancy, error)
	List(ctx context.Context) ([]model.Vacancy, error)
	Get(ctx context.Context, id string) (*model.Vacancy, error)
	Candidates(ctx context.Context, id string) ([]repository.CandidateWithInterview, error)
	Export(ctx context.Context, id string) (*model.Vacancy, *bytes.Buffer, error)
	Matches(ctx context.Context, id string, limit int) ([]dto.VacancyMatchResponse, error)
}

type VacancyHandler struct {
	uc VacancyUsecase
}

func NewVacancyHandler(uc VacancyUsecase) *VacancyHandler {
	return &VacancyHandler{uc: uc}
}

func (h *VacancyHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/vacancies")
	g.Get("/", h.List)
	g.Post("/import", h.Import)
	g.Get("/:id", h.Get)
	g.Get("/:id/candidates", h.Candidates)
	g.Get("/:id/candidates/export", h.Export)
	g.Get("/:id/matches", h.Matches)
}

func (h *VacancyHandler) List(c *fiber.Ctx) error {
	vacancies, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	if len(vacancies) == 0 {
		return util.NotFoundResponse(c, "No vacancies found.")
	}

	data := make([]dto.VacancyListResponse, 0, len(vacancies))
	for _, v := range vacancies {
		data = append(data, dto.NewVacancyListResponse(v))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list vacancies",
		Data:    data,
	})
}

func (h *VacancyHandler) Import(c *fiber.Ctx) error {
	var req dto.VacancyImportRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, err)
	}

	vacancy, err := h.uc.Import(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Vacancy(-ies) imported successfully.",
		Data:    dto.ImportResponse{ID: vacancy.ID, ImportedCount: 1},
	})
}

func (h *VacancyHandler) Get(c *fiber.Ctx) error {
	vacancy, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get vacancy",
		Data:    vacancy,
	})
}

func (h *VacancyHandler) Candidates(c *fiber.Ctx) error {
	rows, err := h.uc.Candidates(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	if len(rows) == 0 {
		return util.NotFoundResponse(c, "No candidates found for this vacancy.")
	}

	data := make([]dto.VacancyCandidateResponse, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.VacancyCandidateResponse{
			ID:          r.ID,
			Name:        r.Name,
			Status:      string(r.Status),
			InterviewID: r.InterviewID,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get vacancy candidates",
		Data:    data,
	})
}

func (h *VacancyHandler) Export(c *fiber.Ctx) error {
	vacancy, buf, err := h.uc.Export(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}

	c.Attachment(fmt.Sprintf("vacancy-%s-pipeline.xlsx", vacancy.ID))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}

func (h *VacancyHandler) Matches(c *fiber.Ctx) error {
	matches, err := h.uc.Matches(c.UserContext(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	if len(matches) == 0 {
		return util.NotFoundResponse(c, "No matching candidates found for this vacancy.")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success match candidates",
		Data:    matches,
	})
}
