package storage

import (
	"skillcompass/backend/models"

	"gorm.io/datatypes"
)

// defaultCareerPaths is the reference catalog inserted on first startup.
// Seeding is idempotent: nothing is inserted while the catalog is non-empty.
var defaultCareerPaths = []models.CareerPath{
	{
		Title:          "Machine Learning Engineer",
		Description:    "Design and build AI models and systems.",
		AvgSalary:      "$150,000",
		DemandLevel:    "High",
		SkillsKeywords: datatypes.JSONSlice[string]{"Python", "TensorFlow", "PyTorch", "Math", "System Design"},
	},
	{
		Title:          "Data Scientist",
		Description:    "Analyze complex data to help organizations make better decisions.",
		AvgSalary:      "$140,000",
		DemandLevel:    "High",
		SkillsKeywords: datatypes.JSONSlice[string]{"Python", "SQL", "Statistics", "Visualization", "Machine Learning"},
	},
	{
		Title:          "AI Product Manager",
		Description:    "Bridge the gap between business needs and AI technology.",
		AvgSalary:      "$160,000",
		DemandLevel:    "Medium",
		SkillsKeywords: datatypes.JSONSlice[string]{"Product Management", "AI Ethics", "Strategy", "Communication"},
	},
	{
		Title:          "NLP Engineer",
		Description:    "Specialized in teaching machines to understand human language.",
		AvgSalary:      "$155,000",
		DemandLevel:    "High",
		SkillsKeywords: datatypes.JSONSlice[string]{"NLP", "Transformers", "Linguistics", "Python", "Deep Learning"},
	},
}
