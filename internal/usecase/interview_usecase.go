package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/model"
	"go.uber.org/zap"
)

type InterviewUsecase struct {
	candidates CandidateRepository
	vacancies  VacancyRepository
	interviews InterviewRepository
	analyzer   InterviewAnalyzer
	log        *zap.Logger
}

func NewInterviewUsecase(candidates CandidateRepository, vacancies VacancyRepository, interviews InterviewRepository, analyzer InterviewAnalyzer, log *zap.Logger) *InterviewUsecase {
	return &InterviewUsecase{
		candidates: candidates,
		vacancies:  vacancies,
		interviews: interviews,
		analyzer:   analyzer,
		log:        log.Named("interviews"),
	}
}

// Schedule analyzes the transcript, then stores the interview and moves the
// candidate to InterviewScheduled for the vacancy. The analysis runs before
// any write, so a failed analysis leaves no trace.
func (uc *InterviewUsecase) Schedule(ctx context.Context, req dto.ScheduleInterviewRequest) (*model.Interview, error) {
	candidateID, err := parseID("candidate", req.CandidateID)
	if err != nil {
		return nil, err
	}
	vacancyID, err := parseID("vacancy", req.VacancyID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.InterviewName)
	if name == "" {
		return nil, apperror.Validation("Interview name is required.")
	}
	date, err := dto.ParseTime(req.InterviewDate)
	if err != nil {
		return nil, apperror.Validation("Invalid interview date %q.", req.InterviewDate)
	}
	text := strings.TrimSpace(req.InterviewText)
	if text == "" {
		return nil, apperror.Validation("Interview text cannot be empty.")
	}

	candidate, err := uc.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.vacancies.FindByID(ctx, vacancyID); err != nil {
		return nil, err
	}
	if !candidate.Status.CanTransitionTo(model.CandidateStatusInterviewScheduled) {
		return nil, apperror.Validation("Candidate with status %q cannot be scheduled for an interview.", candidate.Status)
	}

	analysis, err := uc.analyzer.AnalyzeInterview(ctx, text)
	if err != nil {
		uc.log.Warn("interview analysis failed", zap.Stringer("candidate_id", candidateID), zap.Error(err))
		return nil, err
	}

	interview := &model.Interview{
		CandidateID:   candidateID,
		VacancyID:     vacancyID,
		InterviewName: name,
		InterviewDate: date.Time,
		InterviewText: text,
	}
	if err := interview.SetAnalysis(*analysis); err != nil {
		return nil, fmt.Errorf("encode interview analysis: %w", err)
	}

	if err := uc.interviews.Schedule(ctx, interview); err != nil {
		return nil, err
	}

	uc.log.Info("interview scheduled",
		zap.Stringer("interview_id", interview.ID),
		zap.Stringer("candidate_id", candidateID),
		zap.Stringer("vacancy_id", vacancyID),
		zap.Int("overall_score", analysis.OverallScore),
	)
	return interview, nil
}

// GetAnalysis returns the interview's transcript and stored analysis.
func (uc *InterviewUsecase) GetAnalysis(ctx context.Context, rawID string) (*dto.InterviewAnalysisResponse, error) {
	id, err := parseID("interview", rawID)
	if err != nil {
		return nil, err
	}

	interview, err := uc.interviews.FindByID(ctx, id)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Interview not found.")
		}
		return nil, err
	}

	analysis, err := interview.Analysis()
	if err != nil {
		return nil, fmt.Errorf("decode interview analysis: %w", err)
	}
	if analysis == nil {
		return nil, apperror.NotFound("Analysis not found for this interview.")
	}

	return &dto.InterviewAnalysisResponse{
		InterviewText:     interview.InterviewText,
		InterviewAnalysis: *analysis,
	}, nil
}
