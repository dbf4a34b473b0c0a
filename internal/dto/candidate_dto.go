package dto

import (
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
)

type TotalExperience struct {
	Months *int `json:"months"`
}

type CandidateImportContent struct {
	Title           string                  `json:"title"`
	SkillsAtomic    []string                `json:"skills_atomic"`
	Experience      []model.ExperienceEntry `json:"experience"`
	Education       []model.EducationEntry  `json:"education"`
	AlternateURL    string                  `json:"alternate_url"`
	TotalExperience *TotalExperience        `json:"total_experience"`
}

type CandidateImportRequest struct {
	FullContent CandidateImportContent `json:"fullContent"`
}

type ImportResponse struct {
	ID            uuid.UUID `json:"id"`
	ImportedCount int       `json:"imported_count"`
}

type CandidateSearchResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Skills                []string  `json:"skills"`
	TotalExperienceMonths int       `json:"total_experience_months"`
	Status                string    `json:"status"`
	MainURL               string    `json:"main_url,omitempty"`
}

func NewCandidateSearchResponse(c model.Candidate) CandidateSearchResponse {
	skills := []string(c.Skills)
	if skills == nil {
		skills = []string{}
	}
	return CandidateSearchResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Skills:                skills,
		TotalExperienceMonths: c.TotalExperienceMonths,
		Status:                string(c.Status),
		MainURL:               c.MainURL,
	}
}
