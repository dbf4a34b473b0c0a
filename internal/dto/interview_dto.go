package dto

import (
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
)

type ScheduleInterviewRequest struct {
	CandidateID   string `json:"candidate_id" form:"candidate_id"`
	VacancyID     string `json:"vacancy_id" form:"vacancy_id"`
	InterviewName string `json:"interview_name" form:"interview_name"`
	InterviewDate string `json:"interview_date" form:"interview_date"`
	InterviewText string `json:"interview_text" form:"interview_text"`
}

type ScheduleInterviewResponse struct {
	Message     string    `json:"message"`
	InterviewID uuid.UUID `json:"interview_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
}

type InterviewAnalysisResponse struct {
	InterviewText     string                  `json:"interview_text"`
	InterviewAnalysis model.InterviewAnalysis `json:"interview_analysis"`
}
