package storage

import (
	"errors"

	"skillcompass/backend/models"
)

// ErrNotFound is returned when a row does not exist. Every other storage
// failure surfaces as a generic wrapped error.
var ErrNotFound = errors.New("not found")

// CareerPathFilter narrows the catalog listing. Zero values match everything.
type CareerPathFilter struct {
	Demand  string
	Keyword string
}

// Store is the persistence contract for the roadmap domain. It is
// constructed once in main and injected into services and controllers,
// which lets tests substitute MemStore for the Postgres-backed GormStore.
type Store interface {
	CreateRoadmap(r *models.Roadmap) error
	GetRoadmap(id uint) (*models.FullRoadmap, error)
	GetUserRoadmaps(userID string) ([]models.Roadmap, error)
	DeleteRoadmap(id uint) error

	CreateSkill(s *models.Skill) error
	GetSkill(id uint) (*models.Skill, error)
	UpdateSkillStatus(id uint, status string) (*models.Skill, error)

	CreateResource(res *models.Resource) error

	ListCareerPaths(f CareerPathFilter) ([]models.CareerPath, error)
	CreateCareerPath(p *models.CareerPath) error
	SeedCareerPaths() error

	// Transaction runs fn against a store whose writes commit or roll back
	// as a single unit.
	Transaction(fn func(Store) error) error
}
