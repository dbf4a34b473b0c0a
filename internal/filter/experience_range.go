package filter

import (
	"math"
	"strconv"
	"strings"
)

const monthsPerYear = 12

// ExperienceRange is a constraint on total experience in months.
// When Bounded is false the range is [MinMonths, +inf).
type ExperienceRange struct {
	MinMonths int
	MaxMonths int
	Bounded   bool
}

// ParseExperienceYears converts descriptors such as "3-5 years", "5+ years"
// or "2 years" into a month range. ok is false when the descriptor is empty
// or cannot be parsed; callers treat that as "no experience filter".
func ParseExperienceYears(descriptor string) (r ExperienceRange, ok bool) {
	s := strings.ToLower(descriptor)
	s = strings.ReplaceAll(s, "years", "")
	s = strings.ReplaceAll(s, "year", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return ExperienceRange{}, false
	}

	switch {
	case strings.Contains(s, "+"):
		years, ok := parseYears(strings.ReplaceAll(s, "+", ""))
		if !ok {
			return ExperienceRange{}, false
		}
		return ExperienceRange{MinMonths: years * monthsPerYear}, true

	case strings.Contains(s, "-"):
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return ExperienceRange{}, false
		}
		lo, ok := parseYears(parts[0])
		if !ok {
			return ExperienceRange{}, false
		}
		hi, ok := parseYears(parts[1])
		if !ok {
			return ExperienceRange{}, false
		}
		return ExperienceRange{MinMonths: lo * monthsPerYear, MaxMonths: hi * monthsPerYear, Bounded: true}, true

	default:
		years, ok := parseYears(s)
		if !ok {
			return ExperienceRange{}, false
		}
		months := years * monthsPerYear
		return ExperienceRange{MinMonths: months, MaxMonths: months, Bounded: true}, true
	}
}

// parseYears rejects counts whose month total would overflow int.
func parseYears(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > math.MaxInt/monthsPerYear {
		return 0, false
	}
	return n, true
}

// Contains reports whether months falls inside the range, bounds inclusive.
func (r ExperienceRange) Contains(months int) bool {
	if months < r.MinMonths {
		return false
	}
	return !r.Bounded || months <= r.MaxMonths
}
