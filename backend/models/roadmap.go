package models

import "time"

const RoadmapStatusActive = "active"

// Skill status values. Generation always creates skills as pending;
// in-progress is only ever set through the status endpoint.
const (
	SkillStatusPending    = "pending"
	SkillStatusInProgress = "in-progress"
	SkillStatusCompleted  = "completed"
)

type Roadmap struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"` // external auth subject, never re-parented
	Role      string    `gorm:"not null" json:"role"`
	Goal      string    `gorm:"type:text" json:"goal"`
	Status    string    `gorm:"default:active" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RoadmapID   uint   `gorm:"index;not null" json:"roadmapId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `json:"category"` // Technical, Soft Skill, Tools
	Status      string `gorm:"default:pending" json:"status"`
	Level       string `json:"level"` // Beginner, Intermediate, Advanced
	Order       int    `gorm:"default:0" json:"order"`
}

type Resource struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	SkillID uint   `gorm:"index;not null" json:"skillId"`
	Title   string `gorm:"not null" json:"title"`
	URL     string `gorm:"not null" json:"url"`
	Type    string `json:"type"` // course, article, video, book
}

type SkillWithResources struct {
	Skill
	Resources []Resource `json:"resources"`
}

// FullRoadmap is the nested aggregate returned by the API and consumed by
// the tracking UI: a roadmap with its skills and each skill's resources.
type FullRoadmap struct {
	Roadmap
	Skills []SkillWithResources `json:"skills"`
}
