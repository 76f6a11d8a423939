package services

import "skillcompass/backend/models"

// ProgressSummary is derived on every read and never stored.
type ProgressSummary struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

func ValidSkillStatus(status string) bool {
	switch status {
	case models.SkillStatusPending, models.SkillStatusInProgress, models.SkillStatusCompleted:
		return true
	}
	return false
}

// Progress computes the completion percentage over a roadmap's skills.
// An empty roadmap is 0%, not a division by zero.
func Progress(skills []models.SkillWithResources) ProgressSummary {
	completed := 0
	for _, s := range skills {
		if s.Status == models.SkillStatusCompleted {
			completed++
		}
	}
	summary := ProgressSummary{Completed: completed, Total: len(skills)}
	if summary.Total > 0 {
		summary.Percent = float64(completed) / float64(summary.Total) * 100
	}
	return summary
}
