package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/filter"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

// CandidateWithInterview pairs a candidate with one of its interviews.
type CandidateWithInterview struct {
	model.Candidate
	InterviewID uuid.UUID `gorm:"column:interview_id" json:"interview_id"`
}

// CandidateMatch is a candidate ranked by embedding distance.
type CandidateMatch struct {
	model.Candidate
	Distance float64 `gorm:"column:distance" json:"distance"`
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *model.Candidate) error {
	return translateError(r.db.WithContext(ctx).Create(candidate).Error, "candidate", candidate.Name)
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var c model.Candidate
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Candidate", id)
	}
	return &c, nil
}

// Search returns every candidate matching all supplied criteria.
func (r *CandidateRepository) Search(ctx context.Context, criteria filter.CandidateCriteria) ([]model.Candidate, error) {
	var candidates []model.Candidate
	if err := r.searchQuery(ctx, criteria).Find(&candidates).Error; err != nil {
		return nil, translateError(err, "candidate search", criteria.Role)
	}
	return candidates, nil
}

func (r *CandidateRepository) searchQuery(ctx context.Context, criteria filter.CandidateCriteria) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Candidate{})

	if criteria.Role != "" {
		q = q.Where("name ILIKE ?", "%"+escapeLike(criteria.Role)+"%")
	}

	// && is array overlap: at least one requested skill is present.
	if len(criteria.Skills) > 0 {
		q = q.Where("skills && ?", pq.StringArray(criteria.Skills))
	}

	if exp := criteria.Experience; exp != nil {
		if exp.Bounded {
			q = q.Where("total_experience_months BETWEEN ? AND ?", exp.MinMonths, exp.MaxMonths)
		} else {
			q = q.Where("total_experience_months >= ?", exp.MinMonths)
		}
	}

	return q.Order("created_at DESC")
}

// ForVacancy returns the candidates that have an interview for the vacancy,
// once per interview.
func (r *CandidateRepository) ForVacancy(ctx context.Context, vacancyID uuid.UUID) ([]CandidateWithInterview, error) {
	var rows []CandidateWithInterview
	err := r.forVacancyQuery(ctx, vacancyID).Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "vacancy candidates", vacancyID)
	}
	return rows, nil
}

func (r *CandidateRepository) forVacancyQuery(ctx context.Context, vacancyID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Candidate{}).
		Select("candidates.*, interviews.id AS interview_id").
		Joins("JOIN interviews ON interviews.candidate_id = candidates.id").
		Where("interviews.vacancy_id = ?", vacancyID).
		Order("interviews.created_at ASC")
}

// NearestByEmbedding ranks embedded candidates by L2 distance to embedding.
func (r *CandidateRepository) NearestByEmbedding(ctx context.Context, embedding pgvector.Vector, limit int) ([]CandidateMatch, error) {
	var matches []CandidateMatch

	err := r.db.WithContext(ctx).Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM candidates
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, limit).Scan(&matches).Error
	if err != nil {
		return nil, translateError(err, "candidate matches", limit)
	}

	return matches, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
