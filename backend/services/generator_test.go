package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"testing"

	"skillcompass/backend/models"
	"skillcompass/backend/storage"

	"github.com/stretchr/testify/assert"
)

type stubOracle struct {
	skills []GeneratedSkill
	err    error
	calls  int
}

func (o *stubOracle) GenerateSkills(role, goal, currentLevel string) ([]GeneratedSkill, error) {
	o.calls++
	return o.skills, o.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func makeGeneratedSkills(n, resourcesPer int) []GeneratedSkill {
	skills := make([]GeneratedSkill, 0, n)
	for i := 0; i < n; i++ {
		skill := GeneratedSkill{
			Name:        fmt.Sprintf("Skill %d", i+1),
			Description: "Learn it well",
			Category:    "Technical",
			Level:       "Beginner",
		}
		for j := 0; j < resourcesPer; j++ {
			skill.Resources = append(skill.Resources, GeneratedResource{
				Title: fmt.Sprintf("Resource %d-%d", i+1, j+1),
				URL:   "https://example.com",
				Type:  "article",
			})
		}
		skills = append(skills, skill)
	}
	return skills
}

func TestGenerateValidation(t *testing.T) {
	store := storage.NewMemStore()
	oracle := &stubOracle{skills: makeGeneratedSkills(5, 1)}
	svc := NewRoadmapService(store, oracle, testLogger())

	cases := []struct {
		name  string
		role  string
		goal  string
		level string
	}{
		{"empty role", "", "Learn SQL and statistics", "beginner"},
		{"short goal", "Data Scientist", "SQL", "beginner"},
		{"empty level", "Data Scientist", "Learn SQL and statistics", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate("user-1", tc.role, tc.goal, tc.level)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Validation failures have no side effects: the oracle was never
	// consulted and nothing was persisted.
	assert.Equal(t, 0, oracle.calls)
	roadmaps, err := store.GetUserRoadmaps("user-1")
	assert.NoError(t, err)
	assert.Empty(t, roadmaps)
}

func TestGeneratePersistsOracleOutput(t *testing.T) {
	store := storage.NewMemStore()
	oracle := &stubOracle{skills: makeGeneratedSkills(6, 2)}
	svc := NewRoadmapService(store, oracle, testLogger())

	full, err := svc.Generate("user-1", "Data Scientist", "Learn SQL and statistics for analytics roles", "beginner")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", full.UserID)
	assert.Equal(t, "Data Scientist", full.Role)
	assert.Equal(t, models.RoadmapStatusActive, full.Status)
	assert.Len(t, full.Skills, 6)

	for i, skill := range full.Skills {
		assert.Equal(t, oracle.skills[i].Name, skill.Name)
		assert.Equal(t, models.SkillStatusPending, skill.Status)
		assert.Len(t, skill.Resources, 2)
	}
}

func TestGenerateOracleFailureLeavesNoTrace(t *testing.T) {
	store := storage.NewMemStore()
	oracle := &stubOracle{err: errors.New("connection refused")}
	svc := NewRoadmapService(store, oracle, testLogger())

	_, err := svc.Generate("user-1", "Data Scientist", "Learn SQL and statistics", "beginner")
	assert.ErrorIs(t, err, ErrGenerationFailed)

	roadmaps, err := store.GetUserRoadmaps("user-1")
	assert.NoError(t, err)
	assert.Empty(t, roadmaps)
}

func TestGenerateEmptySkillListStillCreatesRoadmap(t *testing.T) {
	store := storage.NewMemStore()
	oracle := &stubOracle{skills: []GeneratedSkill{}}
	svc := NewRoadmapService(store, oracle, testLogger())

	full, err := svc.Generate("user-1", "Data Scientist", "Learn SQL and statistics", "beginner")
	assert.NoError(t, err)
	assert.Empty(t, full.Skills)

	roadmaps, err := store.GetUserRoadmaps("user-1")
	assert.NoError(t, err)
	assert.Len(t, roadmaps, 1)
}

// faultStore fails resource creation after a threshold, to exercise the
// transaction boundary around the multi-row insert.
type faultStore struct {
	storage.Store
	resourceBudget int
}

func (f *faultStore) CreateResource(res *models.Resource) error {
	if f.resourceBudget <= 0 {
		return errors.New("store fault")
	}
	f.resourceBudget--
	return f.Store.CreateResource(res)
}

func (f *faultStore) Transaction(fn func(storage.Store) error) error {
	return f.Store.Transaction(func(tx storage.Store) error {
		return fn(&faultStore{Store: tx, resourceBudget: f.resourceBudget})
	})
}

func TestGeneratePartialInsertRollsBack(t *testing.T) {
	mem := storage.NewMemStore()
	store := &faultStore{Store: mem, resourceBudget: 3}
	oracle := &stubOracle{skills: makeGeneratedSkills(6, 1)}
	svc := NewRoadmapService(store, oracle, testLogger())

	_, err := svc.Generate("user-1", "Data Scientist", "Learn SQL and statistics", "beginner")
	assert.Error(t, err)

	// The whole aggregate rolls back, including the roadmap row.
	roadmaps, err := mem.GetUserRoadmaps("user-1")
	assert.NoError(t, err)
	assert.Empty(t, roadmaps)
}
