package models

import "gorm.io/datatypes"

// CareerPath is a static catalog entry. The catalog is seeded once at
// startup and is never mutated by users.
type CareerPath struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	Title          string                      `gorm:"not null" json:"title"`
	Description    string                      `gorm:"type:text;not null" json:"description"`
	AvgSalary      string                      `json:"avgSalary"`
	DemandLevel    string                      `json:"demandLevel"` // High, Medium, Low
	SkillsKeywords datatypes.JSONSlice[string] `json:"skillsKeywords"`
}
