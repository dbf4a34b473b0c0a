package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/logger"
	"github.com/fadilmartias/hr-backend/internal/model"
	"go.uber.org/zap"
)

const jsonSystemPrompt = "You are a helpful assistant designed to output JSON."

// AssistantService asks the configured LLM to extract search filters and to
// assess interview transcripts. Any transport failure or answer that does not
// match the expected schema is reported as an external service error.
type AssistantService struct {
	llm          LLMClient
	log          *zap.Logger
	maxLogLength int
}

func NewAssistantService(llm LLMClient, log *zap.Logger, maxLogLength int) *AssistantService {
	return &AssistantService{llm: llm, log: log.Named("assistant"), maxLogLength: maxLogLength}
}

func (s *AssistantService) ParseSearchQuery(ctx context.Context, description string) (*dto.SearchDescriptionParseResponse, error) {
	prompt := fmt.Sprintf(`
You are an expert HR assistant specializing in parsing recruitment queries.
Analyze the following job description and extract the key search parameters.
The user wants to find candidates.

Description: "%s"

Extract the following information and return it as a JSON object with these exact keys:
- "role": The job title or role mentioned (e.g., "backend developer", "data analyst").
- "skills": A list of specific technical skills, tools, or programming languages (e.g., ["Python", "FastAPI", "GCP", "SQL"]).
- "experience_years": A string representing the years of experience, like "3-5 years", "5+ years", etc.

Your response must be only the JSON object, without any other text or explanations.
`, description)

	raw, err := s.generate(ctx, "search_query", prompt)
	if err != nil {
		return nil, apperror.External("Failed to process description with LLM", err)
	}

	filters, err := ParseSearchFilters(raw)
	if err != nil {
		s.log.Warn("malformed search filter response", zap.Error(err), zap.String("response", logger.Truncate(raw, s.maxLogLength)))
		return nil, apperror.External("Failed to process description with LLM", err)
	}
	return filters, nil
}

func (s *AssistantService) AnalyzeInterview(ctx context.Context, interviewText string) (*model.InterviewAnalysis, error) {
	prompt := fmt.Sprintf(`
You are a senior technical recruiter and talent assessor. Analyze the following interview transcript/summary.
Based *only* on the text provided, provide a detailed, structured analysis.

Interview Text: "%s"

Provide your analysis as a JSON object with the following structure and keys:
- "strengths": A list of strings identifying the candidate's key strengths.
- "weaknesses": A list of strings identifying the candidate's key weaknesses or areas for improvement.
- "assessment_aspects": An object where keys are predefined assessment categories and values are your rating (e.g., "Excellent", "Good", "Needs Improvement", "Not Assessed"). The categories are: %s.
- "red_flags_identified": A list of strings detailing any potential red flags. If none, return an empty list.
- "overall_score": An integer from %d to %d representing your overall recommendation score for the candidate based on this interview.

Your response must be only the JSON object.
`, interviewText, quoteAll(model.AssessmentAspects), model.MinOverallScore, model.MaxOverallScore)

	raw, err := s.generate(ctx, "interview_analysis", prompt)
	if err != nil {
		return nil, apperror.External("Failed to analyze interview with LLM", err)
	}

	analysis, err := ParseInterviewAnalysis(raw)
	if err != nil {
		s.log.Warn("malformed interview analysis response", zap.Error(err), zap.String("response", logger.Truncate(raw, s.maxLogLength)))
		return nil, apperror.External("Failed to analyze interview with LLM", err)
	}
	return analysis, nil
}

func (s *AssistantService) generate(ctx context.Context, task, prompt string) (string, error) {
	s.log.Debug("llm request",
		zap.String("task", task),
		zap.String("provider", s.llm.Name()),
		zap.String("prompt", logger.Truncate(prompt, s.maxLogLength)),
	)

	raw, err := s.llm.GenerateJSON(ctx, jsonSystemPrompt, prompt)
	if err != nil {
		s.log.Error("llm request failed", zap.String("task", task), zap.String("provider", s.llm.Name()), zap.Error(err))
		return "", err
	}

	s.log.Debug("llm response", zap.String("task", task), zap.String("response", logger.Truncate(raw, s.maxLogLength)))
	return raw, nil
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
