package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/fadilmartias/hr-backend/internal/dto"
	"github.com/fadilmartias/hr-backend/internal/filter"
	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// store is an in-memory stand-in for the three repositories.
type store struct {
	candidates map[uuid.UUID]*model.Candidate
	vacancies  map[uuid.UUID]*model.Vacancy
	interviews map[uuid.UUID]*model.Interview

	lastCriteria  filter.CandidateCriteria
	lastLimit     int
	matches       []repository.CandidateMatch
	scheduleCalls int
	scheduleErr   error
	clock         time.Time
}

func newStore() *store {
	return &store{
		candidates: map[uuid.UUID]*model.Candidate{},
		vacancies:  map[uuid.UUID]*model.Vacancy{},
		interviews: map[uuid.UUID]*model.Interview{},
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *store) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *store) addCandidate(name string, status model.CandidateStatus) *model.Candidate {
	c := &model.Candidate{ID: uuid.New(), Name: name, Status: status, CreatedAt: s.tick()}
	s.candidates[c.ID] = c
	return c
}

func (s *store) addVacancy(title string) *model.Vacancy {
	v := &model.Vacancy{ID: uuid.New(), Title: title, Status: model.VacancyStatusOpen, CreatedAt: s.tick()}
	s.vacancies[v.ID] = v
	return v
}

type candidateRepo struct{ *store }

func (r candidateRepo) Create(ctx context.Context, c *model.Candidate) error {
	c.ID = uuid.New()
	c.CreatedAt = r.tick()
	r.candidates[c.ID] = c
	return nil
}

func (r candidateRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, apperror.NotFound("Candidate with ID %v not found.", id)
	}
	cp := *c
	return &cp, nil
}

func (r candidateRepo) Search(ctx context.Context, criteria filter.CandidateCriteria) ([]model.Candidate, error) {
	r.lastCriteria = criteria
	var out []model.Candidate
	for _, c := range r.candidates {
		out = append(out, *c)
	}
	return out, nil
}

func (r candidateRepo) ForVacancy(ctx context.Context, vacancyID uuid.UUID) ([]repository.CandidateWithInterview, error) {
	var rows []repository.CandidateWithInterview
	for _, i := range r.interviews {
		if i.VacancyID == vacancyID {
			rows = append(rows, repository.CandidateWithInterview{Candidate: *r.candidates[i.CandidateID], InterviewID: i.ID})
		}
	}
	return rows, nil
}

func (r candidateRepo) NearestByEmbedding(ctx context.Context, embedding pgvector.Vector, limit int) ([]repository.CandidateMatch, error) {
	r.lastLimit = limit
	return r.matches, nil
}

type vacancyRepo struct{ *store }

func (r vacancyRepo) Create(ctx context.Context, v *model.Vacancy) error {
	v.ID = uuid.New()
	v.CreatedAt = r.tick()
	r.vacancies[v.ID] = v
	return nil
}

func (r vacancyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vacancy, error) {
	v, ok := r.vacancies[id]
	if !ok {
		return nil, apperror.NotFound("Vacancy with ID %v not found.", id)
	}
	return v, nil
}

func (r vacancyRepo) List(ctx context.Context) ([]model.Vacancy, error) {
	var out []model.Vacancy
	for _, v := range r.vacancies {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type interviewRepo struct{ *store }

func (r interviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Interview, error) {
	i, ok := r.interviews[id]
	if !ok {
		return nil, apperror.NotFound("Interview with ID %v not found.", id)
	}
	return i, nil
}

func (r interviewRepo) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]model.Interview, error) {
	var out []model.Interview
	for _, i := range r.interviews {
		if i.VacancyID == vacancyID {
			cp := *i
			cp.Candidate = r.candidates[i.CandidateID]
			out = append(out, cp)
		}
	}
	return out, nil
}

// Schedule mirrors the transactional repository: all or nothing.
func (r interviewRepo) Schedule(ctx context.Context, i *model.Interview) error {
	r.scheduleCalls++
	if r.scheduleErr != nil {
		return r.scheduleErr
	}
	c, ok := r.candidates[i.CandidateID]
	if !ok {
		return apperror.NotFound("Candidate with ID %v not found.", i.CandidateID)
	}
	next, err := c.Status.TransitionTo(model.CandidateStatusInterviewScheduled)
	if err != nil {
		return apperror.Validation("%s", err.Error())
	}
	i.ID = uuid.New()
	i.CreatedAt = r.tick()
	r.interviews[i.ID] = i
	c.Status = next
	vid := i.VacancyID
	c.VacancyID = &vid
	return nil
}

type fakeAnalyzer struct {
	analysis *model.InterviewAnalysis
	err      error
	calls    int
}

func (a *fakeAnalyzer) AnalyzeInterview(ctx context.Context, text string) (*model.InterviewAnalysis, error) {
	a.calls++
	return a.analysis, a.err
}

type fakeParser struct {
	resp *dto.SearchDescriptionParseResponse
	got  string
}

func (p *fakeParser) ParseSearchQuery(ctx context.Context, description string) (*dto.SearchDescriptionParseResponse, error) {
	p.got = description
	return p.resp, nil
}

type fakeEmbedder struct {
	values []float32
	err    error
	texts  []string
}

func (e *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	e.texts = append(e.texts, text)
	return e.values, e.err
}

var errLLMDown = apperror.External("Failed to analyze interview with LLM", errors.New("connection refused"))

func sampleAnalysis(score int) *model.InterviewAnalysis {
	aspects := make(map[string]string, len(model.AssessmentAspects))
	for _, a := range model.AssessmentAspects {
		aspects[a] = "Good"
	}
	return &model.InterviewAnalysis{
		Strengths:          []string{"clear communication"},
		Weaknesses:         []string{"limited cloud exposure"},
		AssessmentAspects:  aspects,
		RedFlagsIdentified: []string{},
		OverallScore:       score,
	}
}
