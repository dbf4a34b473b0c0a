package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/filter"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	Search(ctx context.Context, criteria filter.CandidateCriteria) ([]model.Candidate, error)
	ForVacancy(ctx context.Context, vacancyID uuid.UUID) ([]repository.CandidateWithInterview, error)
	NearestByEmbedding(ctx context.Context, embedding pgvector.Vector, limit int) ([]repository.CandidateMatch, error)
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *model.Vacancy) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vacancy, error)
	List(ctx context.Context) ([]model.Vacancy, error)
}

type InterviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Interview, error)
	ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Interview, error)
	Schedule(ctx context.Context, interview *model.Interview) error
}

// InterviewAnalyzer assesses a raw interview transcript.
type InterviewAnalyzer interface {
	AnalyzeInterview(ctx context.Context, interviewText string) (*model.InterviewAnalysis, error)
}

// DescriptionParser extracts search filters from free text.
type DescriptionParser interface {
	ParseSearchQuery(ctx context.Context, description string) (*dto.SearchDescriptionParseResponse, error)
}

func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperror.Validation("Invalid %s ID %q.", entity, raw)
	}
	return id, nil
}
