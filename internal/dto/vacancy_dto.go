package dto

import (
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
)

type VacancyImportContent struct {
	Title                  string   `json:"title"`
	PublishedAt            *Time    `json:"published_at"`
	Responsibilities       []string `json:"responsibilities"`
	RequirementsExperience string   `json:"requirements.experience"`
	SkillsAtomic           []string `json:"skills_atomic"`
}

type VacancyImportRequest struct {
	FullContent VacancyImportContent `json:"fullContent"`
}

type VacancyListResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	PublishedDate *string   `json:"published_date"`
}

func NewVacancyListResponse(v model.Vacancy) VacancyListResponse {
	resp := VacancyListResponse{
		ID:     v.ID,
		Title:  v.Title,
		Status: string(v.Status),
	}
	if v.PublishedDate != nil {
		d := v.PublishedDate.Format("2006-01-02")
		resp.PublishedDate = &d
	}
	return resp
}

type VacancyCandidateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	InterviewID uuid.UUID `json:"interview_id"`
}

type VacancyMatchResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Status                string    `json:"status"`
	TotalExperienceMonths int       `json:"total_experience_months"`
	Distance              float64   `json:"distance"`
	MeetsExperience       *bool     `json:"meets_experience,omitempty"`
}
