package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ExperienceEntry is one position from an imported resume.
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Area        string `json:"area,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one education item from an imported resume.
type EducationEntry struct {
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	Result       string `json:"result,omitempty"`
	Year         int    `json:"year,omitempty"`
}

type Candidate struct {
	ID                    uuid.UUID                            `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name                  string                               `gorm:"type:varchar(255);not null" json:"name"`
	Email                 string                               `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone                 string                               `gorm:"type:varchar(50)" json:"phone"`
	Summary               string                               `gorm:"type:text" json:"summary,omitempty"`
	Skills                pq.StringArray                       `gorm:"type:text[]" json:"skills"`
	Experience            datatypes.JSONSlice[ExperienceEntry] `gorm:"type:jsonb" json:"experience"`
	Education             datatypes.JSONSlice[EducationEntry]  `gorm:"type:jsonb" json:"education"`
	MainURL               string                               `gorm:"type:text" json:"main_url,omitempty"`
	TotalExperienceMonths int                                  `gorm:"not null;default:0;index" json:"total_experience_months"`
	Status                CandidateStatus                      `gorm:"type:varchar(50);not null;default:'New'" json:"status"`
	VacancyID             *uuid.UUID                           `gorm:"type:uuid" json:"vacancy_id,omitempty"`
	Vacancy               *Vacancy                             `gorm:"foreignKey:VacancyID" json:"-"`
	Embedding             *pgvector.Vector                     `gorm:"type:vector(3072)" json:"-"`
	CreatedAt             time.Time                            `json:"created_at"`
	UpdatedAt             time.Time                            `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
