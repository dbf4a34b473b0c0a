package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/tidwall/gjson"
)

var errNotJSONObject = errors.New("response is not a JSON object")

// ParseInterviewAnalysis validates raw against the interview analysis schema.
func ParseInterviewAnalysis(raw string) (*model.InterviewAnalysis, error) {
	raw = stripCodeFence(raw)
	if !gjson.Valid(raw) {
		return nil, errNotJSONObject
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, errNotJSONObject
	}

	for _, key := range []string{"strengths", "weaknesses", "red_flags_identified"} {
		if err := requireStringArray(doc, key); err != nil {
			return nil, err
		}
	}

	aspects := doc.Get("assessment_aspects")
	if !aspects.IsObject() {
		return nil, errors.New(`"assessment_aspects" must be an object`)
	}
	rated := aspects.Map()
	for _, aspect := range model.AssessmentAspects {
		if v, ok := rated[aspect]; !ok || v.Type != gjson.String {
			return nil, fmt.Errorf("assessment aspect %q missing or not a string", aspect)
		}
	}

	score := doc.Get("overall_score")
	// 50.0 and 5e1 are whole but do not decode into an int.
	if score.Type != gjson.Number || strings.ContainsAny(score.Raw, ".eE") {
		return nil, errors.New(`"overall_score" must be an integer`)
	}
	if score.Num < model.MinOverallScore || score.Num > model.MaxOverallScore {
		return nil, fmt.Errorf(`"overall_score" %v outside [%d, %d]`, score.Num, model.MinOverallScore, model.MaxOverallScore)
	}

	var analysis model.InterviewAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &analysis, nil
}

// ParseSearchFilters validates raw against the search filter schema. Every
// field is optional but must have the right type when present.
func ParseSearchFilters(raw string) (*dto.SearchDescriptionParseResponse, error) {
	raw = stripCodeFence(raw)
	if !gjson.Valid(raw) {
		return nil, errNotJSONObject
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, errNotJSONObject
	}

	role, err := optionalString(doc, "role")
	if err != nil {
		return nil, err
	}
	experience, err := optionalString(doc, "experience_years")
	if err != nil {
		return nil, err
	}
	out := &dto.SearchDescriptionParseResponse{Role: role, ExperienceYears: experience}

	if skills := doc.Get("skills"); skills.Exists() && skills.Type != gjson.Null {
		if err := requireStringArray(doc, "skills"); err != nil {
			return nil, err
		}
		out.Skills = []string{}
		for _, s := range skills.Array() {
			out.Skills = append(out.Skills, s.String())
		}
	}

	return out, nil
}

func requireStringArray(doc gjson.Result, key string) error {
	v := doc.Get(key)
	if !v.IsArray() {
		return fmt.Errorf("%q must be an array of strings", key)
	}
	for _, item := range v.Array() {
		if item.Type != gjson.String {
			return fmt.Errorf("%q must be an array of strings", key)
		}
	}
	return nil
}

func optionalString(doc gjson.Result, key string) (*string, error) {
	v := doc.Get(key)
	switch v.Type {
	case gjson.Null:
		return nil, nil
	case gjson.String:
		s := v.String()
		return &s, nil
	case gjson.Number:
		// "experience_years": 5 is common enough to accept.
		s := v.Raw
		return &s, nil
	default:
		return nil, fmt.Errorf("%q must be a string", key)
	}
}
