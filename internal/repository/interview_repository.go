package repository

import (
	"context"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	var i model.Interview
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Interview", id)
	}
	return &i, nil
}

// ListByVacancy returns the vacancy's interviews with their candidates loaded.
func (r *InterviewRepository) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		Where("vacancy_id = ?", vacancyID).
		Order("interview_date ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, translateError(err, "vacancy interviews", vacancyID)
	}
	return interviews, nil
}

// Schedule creates the interview and moves its candidate to
// InterviewScheduled for the interview's vacancy in one transaction.
// Nothing is written if any step fails.
func (r *InterviewRepository) Schedule(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var candidate model.Candidate
		if err := tx.First(&candidate, "id = ?", interview.CandidateID).Error; err != nil {
			return translateError(err, "Candidate", interview.CandidateID)
		}

		var vacancies int64
		if err := tx.Model(&model.Vacancy{}).Where("id = ?", interview.VacancyID).Count(&vacancies).Error; err != nil {
			return translateError(err, "Vacancy", interview.VacancyID)
		}
		if vacancies == 0 {
			return apperror.NotFound("Vacancy with ID %s not found.", interview.VacancyID)
		}

		next, err := candidate.Status.TransitionTo(model.CandidateStatusInterviewScheduled)
		if err != nil {
			return apperror.Validation("%s", err.Error())
		}

		if err := tx.Create(interview).Error; err != nil {
			return translateError(err, "interview", interview.InterviewName)
		}

		err = tx.Model(&candidate).Updates(map[string]any{
			"status":     string(next),
			"vacancy_id": interview.VacancyID,
		}).Error
		return translateError(err, "Candidate", candidate.ID)
	})
}
