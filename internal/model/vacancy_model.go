package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Vacancy struct {
	ID                     uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title                  string           `gorm:"type:varchar(255);not null" json:"title"`
	PublishedDate          *time.Time       `gorm:"type:date" json:"published_date,omitempty"`
	Responsibilities       pq.StringArray   `gorm:"type:text[]" json:"responsibilities"`
	RequirementsExperience string           `gorm:"type:varchar(50)" json:"requirements_experience,omitempty"`
	RequirementsSkills     pq.StringArray   `gorm:"type:text[]" json:"requirements_skills"`
	Status                 VacancyStatus    `gorm:"type:varchar(50);not null;default:'Open'" json:"status"`
	Embedding              *pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt              time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

func (v *Vacancy) TableName() string {
	return "vacancies"
}
