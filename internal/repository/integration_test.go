package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/filter"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// liveDB connects to TEST_DATABASE_DSN and runs every test inside a
// transaction that is rolled back afterwards.
func liveDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func newCandidate(name string, months int, skills ...string) *model.Candidate {
	return &model.Candidate{
		Name:                  name,
		Email:                 uuid.NewString() + "@example.com",
		Skills:                skills,
		TotalExperienceMonths: months,
		Status:                model.CandidateStatusNew,
	}
}

func TestSearchAgainstPostgres(t *testing.T) {
	db := liveDB(t)
	ctx := context.Background()
	repo := NewCandidateRepository(db)

	match := newCandidate("Dev Ops", 40, "Go")
	tooSenior := newCandidate("Dev Lead", 70, "Go")
	wrongSkills := newCandidate("Dev Frontend", 40, "React")
	wrongRole := newCandidate("Designer", 40, "Python")
	for _, c := range []*model.Candidate{match, tooSenior, wrongSkills, wrongRole} {
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.Search(ctx, filter.NewCandidateCriteria("dev", []string{"Python", "Go"}, "3-5 years"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, match.ID, got[0].ID)

	got, err = repo.Search(ctx, filter.NewCandidateCriteria("", []string{"Python", "React"}, ""))
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{wrongSkills.ID, wrongRole.ID}, ids(got))

	got, err = repo.Search(ctx, filter.NewCandidateCriteria("nobody", nil, ""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScheduleAndForVacancyAgainstPostgres(t *testing.T) {
	db := liveDB(t)
	ctx := context.Background()
	candidates := NewCandidateRepository(db)
	vacancies := NewVacancyRepository(db)
	interviews := NewInterviewRepository(db)

	interviewed := newCandidate("Alice", 24, "Go")
	idle := newCandidate("Bob", 24, "Go")
	require.NoError(t, candidates.Create(ctx, interviewed))
	require.NoError(t, candidates.Create(ctx, idle))
	vacancy := &model.Vacancy{Title: "Backend Engineer", Status: model.VacancyStatusOpen}
	require.NoError(t, vacancies.Create(ctx, vacancy))

	interview := &model.Interview{
		CandidateID:   interviewed.ID,
		VacancyID:     vacancy.ID,
		InterviewName: "Tech screen",
		InterviewDate: time.Now().UTC(),
		InterviewText: "Discussed Go concurrency.",
	}
	require.NoError(t, interview.SetAnalysis(model.InterviewAnalysis{OverallScore: 80}))
	require.NoError(t, interviews.Schedule(ctx, interview))
	require.NotEqual(t, uuid.Nil, interview.ID)

	updated, err := candidates.FindByID(ctx, interviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CandidateStatusInterviewScheduled, updated.Status)
	require.NotNil(t, updated.VacancyID)
	assert.Equal(t, vacancy.ID, *updated.VacancyID)

	rows, err := candidates.ForVacancy(ctx, vacancy.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, interviewed.ID, rows[0].ID)
	assert.Equal(t, interview.ID, rows[0].InterviewID)

	missing := &model.Interview{CandidateID: idle.ID, VacancyID: uuid.New(), InterviewDate: time.Now()}
	err = interviews.Schedule(ctx, missing)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	untouched, err := candidates.FindByID(ctx, idle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CandidateStatusNew, untouched.Status)
	assert.Nil(t, untouched.VacancyID)
}

func TestListVacanciesNewestFirst(t *testing.T) {
	db := liveDB(t)
	ctx := context.Background()
	repo := NewVacancyRepository(db)

	older := &model.Vacancy{Title: "Older", Status: model.VacancyStatusOpen, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &model.Vacancy{Title: "Newer", Status: model.VacancyStatusOpen, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, newer.ID, got[0].ID)
}

func ids(candidates []model.Candidate) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID)
	}
	return out
}
