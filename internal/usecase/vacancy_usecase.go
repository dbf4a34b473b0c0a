package usecase

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/export"
	"github.com/fadilmartias/hr-backend/internal/filter"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/fadilmartias/hr-backend/internal/service"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	DefaultMatchLimit = 10
	MaxMatchLimit     = 100
)

type VacancyUsecase struct {
	vacancies  VacancyRepository
	candidates CandidateRepository
	interviews InterviewRepository
	embedder   service.Embedder
	log        *zap.Logger
}

func NewVacancyUsecase(vacancies VacancyRepository, candidates CandidateRepository, interviews InterviewRepository, embedder service.Embedder, log *zap.Logger) *VacancyUsecase {
	return &VacancyUsecase{
		vacancies:  vacancies,
		candidates: candidates,
		interviews: interviews,
		embedder:   embedder,
		log:        log.Named("vacancies"),
	}
}

// Import stores one vacancy from a job board export. The publish timestamp
// keeps only its calendar date.
func (uc *VacancyUsecase) Import(ctx context.Context, req dto.VacancyImportRequest) (*model.Vacancy, error) {
	content := req.FullContent
	title := strings.TrimSpace(content.Title)
	if title == "" {
		return nil, apperror.Validation("Vacancy title is required.")
	}

	vacancy := &model.Vacancy{
		Title:                  title,
		Responsibilities:       pq.StringArray(content.Responsibilities),
		RequirementsExperience: strings.TrimSpace(content.RequirementsExperience),
		RequirementsSkills:     pq.StringArray(content.SkillsAtomic),
		Status:                 model.VacancyStatusOpen,
	}
	if content.PublishedAt != nil && !content.PublishedAt.IsZero() {
		t := content.PublishedAt.Time
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		vacancy.PublishedDate = &date
	}
	vacancy.Embedding = embedText(ctx, uc.embedder, uc.log, vacancyEmbeddingText(vacancy))

	if err := uc.vacancies.Create(ctx, vacancy); err != nil {
		return nil, err
	}
	uc.log.Info("vacancy imported", zap.Stringer("id", vacancy.ID), zap.String("title", vacancy.Title))
	return vacancy, nil
}

// List returns all vacancies, newest first.
func (uc *VacancyUsecase) List(ctx context.Context) ([]model.Vacancy, error) {
	return uc.vacancies.List(ctx)
}

func (uc *VacancyUsecase) Get(ctx context.Context, rawID string) (*model.Vacancy, error) {
	id, err := parseID("vacancy", rawID)
	if err != nil {
		return nil, err
	}
	return uc.vacancies.FindByID(ctx, id)
}

// Candidates returns each candidate interviewed for the vacancy together
// with the interview id.
func (uc *VacancyUsecase) Candidates(ctx context.Context, rawID string) ([]repository.CandidateWithInterview, error) {
	id, err := parseID("vacancy", rawID)
	if err != nil {
		return nil, err
	}
	return uc.candidates.ForVacancy(ctx, id)
}

// Export renders the vacancy's interview pipeline as an xlsx workbook.
func (uc *VacancyUsecase) Export(ctx context.Context, rawID string) (*model.Vacancy, *bytes.Buffer, error) {
	vacancy, err := uc.Get(ctx, rawID)
	if err != nil {
		return nil, nil, err
	}
	interviews, err := uc.interviews.ListByVacancy(ctx, vacancy.ID)
	if err != nil {
		return nil, nil, err
	}
	buf, err := export.VacancyPipeline(vacancy, interviews)
	if err != nil {
		return nil, nil, err
	}
	return vacancy, buf, nil
}

// Matches ranks embedded candidates by distance to the vacancy embedding and
// flags whether each meets the vacancy's experience requirement.
func (uc *VacancyUsecase) Matches(ctx context.Context, rawID string, limit int) ([]dto.VacancyMatchResponse, error) {
	vacancy, err := uc.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if vacancy.Embedding == nil {
		return nil, apperror.Validation("Vacancy %s has no embedding.", vacancy.ID)
	}

	switch {
	case limit <= 0:
		limit = DefaultMatchLimit
	case limit > MaxMatchLimit:
		limit = MaxMatchLimit
	}

	matches, err := uc.candidates.NearestByEmbedding(ctx, *vacancy.Embedding, limit)
	if err != nil {
		return nil, err
	}

	required, hasRequirement := filter.ParseExperienceYears(vacancy.RequirementsExperience)
	resp := make([]dto.VacancyMatchResponse, 0, len(matches))
	for _, m := range matches {
		r := dto.VacancyMatchResponse{
			ID:                    m.ID,
			Name:                  m.Name,
			Status:                string(m.Status),
			TotalExperienceMonths: m.TotalExperienceMonths,
			Distance:              m.Distance,
		}
		if hasRequirement {
			meets := required.Contains(m.TotalExperienceMonths)
			r.MeetsExperience = &meets
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func vacancyEmbeddingText(v *model.Vacancy) string {
	parts := []string{v.Title}
	if v.RequirementsExperience != "" {
		parts = append(parts, "Experience: "+v.RequirementsExperience)
	}
	if len(v.RequirementsSkills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(v.RequirementsSkills, ", "))
	}
	parts = append(parts, v.Responsibilities...)
	return strings.Join(parts, "\n")
}
