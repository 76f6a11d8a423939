package services

import (
	"testing"

	"skillcompass/backend/models"
	"skillcompass/backend/storage"

	"github.com/stretchr/testify/assert"
)

func skillsWithStatuses(statuses ...string) []models.SkillWithResources {
	skills := make([]models.SkillWithResources, 0, len(statuses))
	for _, status := range statuses {
		skills = append(skills, models.SkillWithResources{
			Skill: models.Skill{Status: status},
		})
	}
	return skills
}

func TestProgressEmptyRoadmapIsZero(t *testing.T) {
	summary := Progress(nil)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Completed)
	assert.Equal(t, 0.0, summary.Percent)
}

func TestProgressAllCompletedIsHundred(t *testing.T) {
	summary := Progress(skillsWithStatuses(
		models.SkillStatusCompleted,
		models.SkillStatusCompleted,
		models.SkillStatusCompleted,
	))
	assert.Equal(t, 100.0, summary.Percent)
}

func TestProgressHalfCompleted(t *testing.T) {
	summary := Progress(skillsWithStatuses(
		models.SkillStatusCompleted,
		models.SkillStatusCompleted,
		models.SkillStatusPending,
		models.SkillStatusInProgress,
	))
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 50.0, summary.Percent)
}

func TestProgressMonotonicUnderCompletion(t *testing.T) {
	statuses := []string{
		models.SkillStatusPending,
		models.SkillStatusPending,
		models.SkillStatusInProgress,
		models.SkillStatusPending,
	}
	previous := Progress(skillsWithStatuses(statuses...)).Percent
	for i := range statuses {
		statuses[i] = models.SkillStatusCompleted
		current := Progress(skillsWithStatuses(statuses...)).Percent
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, 100.0, previous)
}

func TestValidSkillStatus(t *testing.T) {
	assert.True(t, ValidSkillStatus(models.SkillStatusPending))
	assert.True(t, ValidSkillStatus(models.SkillStatusInProgress))
	assert.True(t, ValidSkillStatus(models.SkillStatusCompleted))
	assert.False(t, ValidSkillStatus("done"))
	assert.False(t, ValidSkillStatus(""))
}

func TestToggleStatusRoundTrips(t *testing.T) {
	store := storage.NewMemStore()
	skill := &models.Skill{RoadmapID: 1, Name: "SQL"}
	assert.NoError(t, store.CreateSkill(skill))
	assert.Equal(t, models.SkillStatusPending, skill.Status)

	// Two toggles land back on the starting status.
	updated, err := store.UpdateSkillStatus(skill.ID, models.SkillStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.SkillStatusCompleted, updated.Status)

	updated, err = store.UpdateSkillStatus(skill.ID, models.SkillStatusPending)
	assert.NoError(t, err)
	assert.Equal(t, models.SkillStatusPending, updated.Status)

	updated, err = store.UpdateSkillStatus(skill.ID, models.SkillStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, models.SkillStatusCompleted, updated.Status)
}
