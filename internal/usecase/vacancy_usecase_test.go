package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newVacancyUsecase(s *store, emb *fakeEmbedder) *VacancyUsecase {
	if emb == nil {
		return NewVacancyUsecase(vacancyRepo{s}, candidateRepo{s}, interviewRepo{s}, nil, zap.NewNop())
	}
	return NewVacancyUsecase(vacancyRepo{s}, candidateRepo{s}, interviewRepo{s}, emb, zap.NewNop())
}

func TestVacancyImport(t *testing.T) {
	s := newStore()
	uc := newVacancyUsecase(s, nil)

	published, err := dto.ParseTime("2024-05-01T17:45:00+0300")
	require.NoError(t, err)

	v, err := uc.Import(context.Background(), dto.VacancyImportRequest{FullContent: dto.VacancyImportContent{
		Title:                  "Backend Engineer",
		PublishedAt:            &published,
		Responsibilities:       []string{"Build APIs"},
		RequirementsExperience: "3-5 years",
		SkillsAtomic:           []string{"Go"},
	}})
	require.NoError(t, err)

	assert.Equal(t, model.VacancyStatusOpen, v.Status)
	require.NotNil(t, v.PublishedDate)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *v.PublishedDate)
	assert.Equal(t, "3-5 years", v.RequirementsExperience)
	assert.Equal(t, []string{"Go"}, []string(v.RequirementsSkills))
	assert.Contains(t, s.vacancies, v.ID)
}

func TestVacancyImportWithoutPublishDate(t *testing.T) {
	uc := newVacancyUsecase(newStore(), nil)

	v, err := uc.Import(context.Background(), dto.VacancyImportRequest{FullContent: dto.VacancyImportContent{Title: "Designer"}})
	require.NoError(t, err)
	assert.Nil(t, v.PublishedDate)
}

func TestVacancyImportRequiresTitle(t *testing.T) {
	uc := newVacancyUsecase(newStore(), nil)

	_, err := uc.Import(context.Background(), dto.VacancyImportRequest{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestVacancyListNewestFirst(t *testing.T) {
	s := newStore()
	older := s.addVacancy("Older")
	newer := s.addVacancy("Newer")
	uc := newVacancyUsecase(s, nil)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestVacancyCandidatesOnlyInterviewed(t *testing.T) {
	s := newStore()
	v := s.addVacancy("Backend Engineer")
	interviewed := s.addCandidate("Ada", model.CandidateStatusNew)
	s.addCandidate("Grace", model.CandidateStatusNew)

	iv := NewInterviewUsecase(candidateRepo{s}, vacancyRepo{s}, interviewRepo{s}, &fakeAnalyzer{analysis: sampleAnalysis(70)}, zap.NewNop())
	interview, err := iv.Schedule(context.Background(), scheduleRequest(interviewed.ID, v.ID))
	require.NoError(t, err)

	rows, err := newVacancyUsecase(s, nil).Candidates(context.Background(), v.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, interviewed.ID, rows[0].ID)
	assert.Equal(t, interview.ID, rows[0].InterviewID)
}

func TestVacancyExport(t *testing.T) {
	s := newStore()
	v := s.addVacancy("Backend Engineer")
	c := s.addCandidate("Ada", model.CandidateStatusNew)
	iv := NewInterviewUsecase(candidateRepo{s}, vacancyRepo{s}, interviewRepo{s}, &fakeAnalyzer{analysis: sampleAnalysis(64)}, zap.NewNop())
	_, err := iv.Schedule(context.Background(), scheduleRequest(c.ID, v.ID))
	require.NoError(t, err)

	got, buf, err := newVacancyUsecase(s, nil).Export(context.Background(), v.ID.String())
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	score, err := f.GetCellValue("Pipeline", "F2")
	require.NoError(t, err)
	assert.Equal(t, "64", score)
}

func TestVacancyExportUnknownVacancy(t *testing.T) {
	_, _, err := newVacancyUsecase(newStore(), nil).Export(context.Background(), uuid.NewString())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestVacancyMatches(t *testing.T) {
	s := newStore()
	v := s.addVacancy("Backend Engineer")
	v.RequirementsExperience = "3-5 years"
	vec := pgvector.NewVector([]float32{1, 0})
	v.Embedding = &vec

	s.matches = []repository.CandidateMatch{
		{Candidate: model.Candidate{ID: uuid.New(), Name: "Ada", TotalExperienceMonths: 40}, Distance: 0.1},
		{Candidate: model.Candidate{ID: uuid.New(), Name: "Grace", TotalExperienceMonths: 70}, Distance: 0.3},
	}

	got, err := newVacancyUsecase(s, nil).Matches(context.Background(), v.ID.String(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultMatchLimit, s.lastLimit)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].MeetsExperience)
	assert.True(t, *got[0].MeetsExperience)
	require.NotNil(t, got[1].MeetsExperience)
	assert.False(t, *got[1].MeetsExperience)

	_, err = newVacancyUsecase(s, nil).Matches(context.Background(), v.ID.String(), 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxMatchLimit, s.lastLimit)
}

func TestVacancyMatchesWithoutRequirement(t *testing.T) {
	s := newStore()
	v := s.addVacancy("Designer")
	v.RequirementsExperience = "senior"
	vec := pgvector.NewVector([]float32{1})
	v.Embedding = &vec
	s.matches = []repository.CandidateMatch{{Candidate: model.Candidate{ID: uuid.New(), Name: "Ada"}}}

	got, err := newVacancyUsecase(s, nil).Matches(context.Background(), v.ID.String(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].MeetsExperience)
}

func TestVacancyMatchesRequiresEmbedding(t *testing.T) {
	s := newStore()
	v := s.addVacancy("Designer")

	_, err := newVacancyUsecase(s, nil).Matches(context.Background(), v.ID.String(), 5)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestVacancyImportEmbedding(t *testing.T) {
	emb := &fakeEmbedder{values: []float32{0.1}}
	v, err := newVacancyUsecase(newStore(), emb).Import(context.Background(), dto.VacancyImportRequest{FullContent: dto.VacancyImportContent{
		Title:            "Backend Engineer",
		Responsibilities: []string{"Build APIs"},
	}})
	require.NoError(t, err)
	require.NotNil(t, v.Embedding)
	assert.Contains(t, emb.texts[0], "Build APIs")
}
