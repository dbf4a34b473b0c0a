package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Assessment aspects the interview analysis must rate, in report order.
const (
	AspectCoreTechnicalSkills = "Core Technical Skills"
	AspectProblemSolving      = "Problem-Solving Ability"
	AspectPastProjects        = "Past Project Experience"
	AspectTechnicalDepth      = "Technical Depth"
	AspectCommunication       = "Communication & Clarity"
	AspectMotivation          = "Motivation & Drive"
	AspectTeamCollaboration   = "Team Collaboration & Attitude"
	AspectReliability         = "Reliability & Ownership"
)

var AssessmentAspects = []string{
	AspectCoreTechnicalSkills,
	AspectProblemSolving,
	AspectPastProjects,
	AspectTechnicalDepth,
	AspectCommunication,
	AspectMotivation,
	AspectTeamCollaboration,
	AspectReliability,
}

const (
	MinOverallScore = 0
	MaxOverallScore = 100
)

type InterviewAnalysis struct {
	Strengths          []string          `json:"strengths"`
	Weaknesses         []string          `json:"weaknesses"`
	AssessmentAspects  map[string]string `json:"assessment_aspects"`
	RedFlagsIdentified []string          `json:"red_flags_identified"`
	OverallScore       int               `json:"overall_score"`
}

type Interview struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Candidate         *Candidate     `gorm:"foreignKey:CandidateID" json:"-"`
	VacancyID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"vacancy_id"`
	Vacancy           *Vacancy       `gorm:"foreignKey:VacancyID" json:"-"`
	InterviewName     string         `gorm:"type:varchar(255)" json:"interview_name"`
	InterviewDate     time.Time      `json:"interview_date"`
	InterviewText     string         `gorm:"type:text" json:"interview_text"`
	InterviewAnalysis datatypes.JSON `gorm:"type:jsonb" json:"interview_analysis,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews"
}

// SetAnalysis stores a as the interview's JSONB analysis.
func (i *Interview) SetAnalysis(a InterviewAnalysis) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	i.InterviewAnalysis = datatypes.JSON(raw)
	return nil
}

// Analysis decodes the stored analysis. It returns nil, nil when none was recorded.
func (i *Interview) Analysis() (*InterviewAnalysis, error) {
	if len(i.InterviewAnalysis) == 0 || string(i.InterviewAnalysis) == "null" {
		return nil, nil
	}
	var a InterviewAnalysis
	if err := json.Unmarshal(i.InterviewAnalysis, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
