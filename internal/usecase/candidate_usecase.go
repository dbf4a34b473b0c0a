package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/filter"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/service"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

const (
	placeholderEmailDomain = "@dummy.com"
	placeholderPhone       = "+1234567890"
)

type CandidateUsecase struct {
	candidates CandidateRepository
	embedder   service.Embedder
	log        *zap.Logger
}

// NewCandidateUsecase builds the usecase. embedder may be nil, in which case
// imported candidates are stored without an embedding.
func NewCandidateUsecase(candidates CandidateRepository, embedder service.Embedder, log *zap.Logger) *CandidateUsecase {
	return &CandidateUsecase{candidates: candidates, embedder: embedder, log: log.Named("candidates")}
}

// Import stores one candidate from an external resume export. Imported data
// carries no contact details, so a unique placeholder email is generated.
func (uc *CandidateUsecase) Import(ctx context.Context, req dto.CandidateImportRequest) (*model.Candidate, error) {
	content := req.FullContent
	name := strings.TrimSpace(content.Title)
	if name == "" {
		return nil, apperror.Validation("Candidate title is required.")
	}

	months := 0
	if content.TotalExperience != nil && content.TotalExperience.Months != nil {
		months = *content.TotalExperience.Months
	}
	if months < 0 {
		return nil, apperror.Validation("Total experience cannot be negative.")
	}

	candidate := &model.Candidate{
		Name:                  name,
		Email:                 placeholderEmail(),
		Phone:                 placeholderPhone,
		Skills:                pq.StringArray(content.SkillsAtomic),
		Experience:            content.Experience,
		Education:             content.Education,
		MainURL:               content.AlternateURL,
		TotalExperienceMonths: months,
		Status:                model.CandidateStatusNew,
	}
	candidate.Embedding = uc.embed(ctx, candidateEmbeddingText(candidate))

	if err := uc.candidates.Create(ctx, candidate); err != nil {
		return nil, err
	}
	uc.log.Info("candidate imported", zap.Stringer("id", candidate.ID), zap.String("name", candidate.Name))
	return candidate, nil
}

// Search returns candidates matching every supplied filter. skills is a
// comma separated list; an unparseable experienceYears applies no filter.
func (uc *CandidateUsecase) Search(ctx context.Context, role, skills, experienceYears string) ([]model.Candidate, error) {
	criteria := filter.NewCandidateCriteria(role, filter.SplitSkills(skills), experienceYears)
	return uc.candidates.Search(ctx, criteria)
}

func (uc *CandidateUsecase) Get(ctx context.Context, rawID string) (*model.Candidate, error) {
	id, err := parseID("candidate", rawID)
	if err != nil {
		return nil, err
	}
	return uc.candidates.FindByID(ctx, id)
}

// embed returns nil when embeddings are disabled or the provider fails.
// Import never fails because of the embedding.
func (uc *CandidateUsecase) embed(ctx context.Context, text string) *pgvector.Vector {
	return embedText(ctx, uc.embedder, uc.log, text)
}

func embedText(ctx context.Context, embedder service.Embedder, log *zap.Logger, text string) *pgvector.Vector {
	if embedder == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	values, err := embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Warn("embedding failed, storing record without it", zap.Error(err))
		return nil
	}
	v := pgvector.NewVector(values)
	return &v
}

func placeholderEmail() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:12] + placeholderEmailDomain
}

func candidateEmbeddingText(c *model.Candidate) string {
	var b strings.Builder
	b.WriteString(c.Name)
	if len(c.Skills) > 0 {
		b.WriteString("\nSkills: ")
		b.WriteString(strings.Join(c.Skills, ", "))
	}
	for _, e := range c.Experience {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(e.Position + " " + e.Company))
		if e.Description != "" {
			b.WriteString(": ")
			b.WriteString(e.Description)
		}
	}
	return b.String()
}
