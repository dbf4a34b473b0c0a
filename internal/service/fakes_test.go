package service

import (
	"context"
	"sync"
)

type fakeLLM struct {
	mu      sync.Mutex
	answer  string
	err     error
	prompts []string
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) GenerateJSON(ctx context.Context, systemPrompt, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

const validAnalysis = `{
  "strengths": ["Clear communicator", "Strong Go background"],
  "weaknesses": ["Limited Kubernetes exposure"],
  "assessment_aspects": {
    "Core Technical Skills": "Excellent",
    "Problem-Solving Ability": "Good",
    "Past Project Experience": "Good",
    "Technical Depth": "Good",
    "Communication & Clarity": "Excellent",
    "Motivation & Drive": "Good",
    "Team Collaboration & Attitude": "Good",
    "Reliability & Ownership": "Not Assessed"
  },
  "red_flags_identified": [],
  "overall_score": 82
}`
