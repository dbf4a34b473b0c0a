package model

import "fmt"

type CandidateStatus string

const (
	CandidateStatusNew                CandidateStatus = "New"
	CandidateStatusInterviewScheduled CandidateStatus = "Interview Scheduled"
	// Rejected and Hired are not produced by any workflow yet; they exist so
	// the transition table below is closed.
	CandidateStatusRejected CandidateStatus = "Rejected"
	CandidateStatusHired    CandidateStatus = "Hired"
)

var candidateTransitions = map[CandidateStatus][]CandidateStatus{
	CandidateStatusNew: {
		CandidateStatusInterviewScheduled,
		CandidateStatusRejected,
	},
	CandidateStatusInterviewScheduled: {
		CandidateStatusInterviewScheduled,
		CandidateStatusRejected,
		CandidateStatusHired,
	},
}

func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusNew, CandidateStatusInterviewScheduled, CandidateStatusRejected, CandidateStatusHired:
		return true
	}
	return false
}

// CanTransitionTo reports whether a candidate in status s may move to next.
func (s CandidateStatus) CanTransitionTo(next CandidateStatus) bool {
	for _, allowed := range candidateTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is allowed.
func (s CandidateStatus) TransitionTo(next CandidateStatus) (CandidateStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("candidate status cannot change from %q to %q", s, next)
	}
	return next, nil
}

type VacancyStatus string

const (
	VacancyStatusOpen   VacancyStatus = "Open"
	VacancyStatusClosed VacancyStatus = "Closed"
)
