package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterviewAnalysis(t *testing.T) {
	analysis, err := ParseInterviewAnalysis(validAnalysis)
	require.NoError(t, err)

	assert.Equal(t, 82, analysis.OverallScore)
	assert.Len(t, analysis.AssessmentAspects, 8)
	assert.Equal(t, "Excellent", analysis.AssessmentAspects["Communication & Clarity"])
	assert.Empty(t, analysis.RedFlagsIdentified)
}

func TestParseInterviewAnalysisStripsCodeFence(t *testing.T) {
	analysis, err := ParseInterviewAnalysis("```json\n" + validAnalysis + "\n```")
	require.NoError(t, err)
	assert.Equal(t, 82, analysis.OverallScore)
}

func TestParseInterviewAnalysisRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":       "The candidate did well.",
		"array":          "[]",
		"truncated":      validAnalysis[:40],
		"score too high": strings.Replace(validAnalysis, `"overall_score": 82`, `"overall_score": 120`, 1),
		"negative score": strings.Replace(validAnalysis, `"overall_score": 82`, `"overall_score": -1`, 1),
		"fraction score": strings.Replace(validAnalysis, `"overall_score": 82`, `"overall_score": 82.5`, 1),
		"string score":   strings.Replace(validAnalysis, `"overall_score": 82`, `"overall_score": "82"`, 1),
		"missing score":  strings.Replace(validAnalysis, `"overall_score": 82`, `"score": 82`, 1),
		"missing aspect": strings.Replace(validAnalysis, `"Technical Depth": "Good",`, ``, 1),
		"aspect number":  strings.Replace(validAnalysis, `"Technical Depth": "Good"`, `"Technical Depth": 4`, 1),
		"strengths text": strings.Replace(validAnalysis, `["Clear communicator", "Strong Go background"]`, `"Clear communicator"`, 1),
		"no red flags":   strings.Replace(validAnalysis, `"red_flags_identified": [],`, ``, 1),
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInterviewAnalysis(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseInterviewAnalysisScoreMustBeIntegerLiteral(t *testing.T) {
	for _, score := range []string{"50.0", "5e1", "5E1", "82.5"} {
		t.Run(score, func(t *testing.T) {
			raw := strings.Replace(validAnalysis, `"overall_score": 82`, `"overall_score": `+score, 1)
			_, err := ParseInterviewAnalysis(raw)
			require.Error(t, err)
			assert.Equal(t, `"overall_score" must be an integer`, err.Error())
		})
	}
}

func TestParseSearchFilters(t *testing.T) {
	got, err := ParseSearchFilters(`{"role":"backend developer","skills":["Python","SQL"],"experience_years":"3-5 years"}`)
	require.NoError(t, err)
	require.NotNil(t, got.Role)
	assert.Equal(t, "backend developer", *got.Role)
	assert.Equal(t, []string{"Python", "SQL"}, got.Skills)
	require.NotNil(t, got.ExperienceYears)
	assert.Equal(t, "3-5 years", *got.ExperienceYears)
}

func TestParseSearchFiltersOptionalFields(t *testing.T) {
	got, err := ParseSearchFilters(`{"role":null,"experience_years":5}`)
	require.NoError(t, err)
	assert.Nil(t, got.Role)
	assert.Nil(t, got.Skills)
	require.NotNil(t, got.ExperienceYears)
	assert.Equal(t, "5", *got.ExperienceYears)
}

func TestParseSearchFiltersRejectsWrongTypes(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`"backend"`,
		`{"skills":"Python"}`,
		`{"skills":[1,2]}`,
		`{"role":["dev"]}`,
	} {
		_, err := ParseSearchFilters(raw)
		assert.Error(t, err, raw)
	}
}
