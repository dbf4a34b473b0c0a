package filter

import "strings"

// CandidateCriteria holds the optional filters of a candidate search.
// Supplied filters are combined with AND; Skills match if any one is present.
type CandidateCriteria struct {
	// Role is matched case-insensitively as a substring of the candidate name.
	Role       string
	Skills     []string
	Experience *ExperienceRange
}

func NewCandidateCriteria(role string, skills []string, experienceYears string) CandidateCriteria {
	c := CandidateCriteria{
		Role:   strings.TrimSpace(role),
		Skills: normalizeSkills(skills),
	}
	if r, ok := ParseExperienceYears(experienceYears); ok {
		c.Experience = &r
	}
	return c
}

// SplitSkills splits a comma separated skills query parameter.
func SplitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	return normalizeSkills(strings.Split(raw, ","))
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (c CandidateCriteria) IsEmpty() bool {
	return c.Role == "" && len(c.Skills) == 0 && c.Experience == nil
}
