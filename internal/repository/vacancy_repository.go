package repository

import (
	"context"

	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VacancyRepository struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) *VacancyRepository {
	return &VacancyRepository{db}
}

func (r *VacancyRepository) Create(ctx context.Context, vacancy *model.Vacancy) error {
	return translateError(r.db.WithContext(ctx).Create(vacancy).Error, "vacancy", vacancy.Title)
}

func (r *VacancyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vacancy, error) {
	var v model.Vacancy
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "Vacancy", id)
	}
	return &v, nil
}

// List returns all vacancies, most recently created first.
func (r *VacancyRepository) List(ctx context.Context) ([]model.Vacancy, error) {
	var vacancies []model.Vacancy
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vacancies).Error; err != nil {
		return nil, translateError(err, "vacancy list", "")
	}
	return vacancies, nil
}
