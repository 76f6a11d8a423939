package storage

import (
	"errors"
	"fmt"

	"skillcompass/backend/models"

	"gorm.io/gorm"
)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) CreateRoadmap(r *models.Roadmap) error {
	if err := s.DB.Create(r).Error; err != nil {
		return fmt.Errorf("create roadmap: %w", err)
	}
	return nil
}

func (s *GormStore) GetRoadmap(id uint) (*models.FullRoadmap, error) {
	var roadmap models.Roadmap
	if err := s.DB.First(&roadmap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get roadmap: %w", err)
	}

	var skills []models.Skill
	if err := s.DB.Where("roadmap_id = ?", id).Order(`"order", id`).Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("get roadmap skills: %w", err)
	}

	full := &models.FullRoadmap{
		Roadmap: roadmap,
		Skills:  make([]models.SkillWithResources, 0, len(skills)),
	}
	for _, skill := range skills {
		var resources []models.Resource
		if err := s.DB.Where("skill_id = ?", skill.ID).Order("id").Find(&resources).Error; err != nil {
			return nil, fmt.Errorf("get skill resources: %w", err)
		}
		full.Skills = append(full.Skills, models.SkillWithResources{Skill: skill, Resources: resources})
	}
	return full, nil
}

func (s *GormStore) GetUserRoadmaps(userID string) ([]models.Roadmap, error) {
	var roadmaps []models.Roadmap
	if err := s.DB.Where("user_id = ?", userID).Order("created_at, id").Find(&roadmaps).Error; err != nil {
		return nil, fmt.Errorf("list roadmaps: %w", err)
	}
	return roadmaps, nil
}

// DeleteRoadmap removes a roadmap together with its skills and their
// resources. The cascade is explicit rather than delegated to FK
// constraints, and runs in a single transaction.
func (s *GormStore) DeleteRoadmap(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var roadmap models.Roadmap
		if err := tx.First(&roadmap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("delete roadmap: %w", err)
		}

		var skillIDs []uint
		if err := tx.Model(&models.Skill{}).Where("roadmap_id = ?", id).Pluck("id", &skillIDs).Error; err != nil {
			return fmt.Errorf("delete roadmap: %w", err)
		}
		if len(skillIDs) > 0 {
			if err := tx.Where("skill_id IN ?", skillIDs).Delete(&models.Resource{}).Error; err != nil {
				return fmt.Errorf("delete resources: %w", err)
			}
		}
		if err := tx.Where("roadmap_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return fmt.Errorf("delete skills: %w", err)
		}
		if err := tx.Delete(&models.Roadmap{}, id).Error; err != nil {
			return fmt.Errorf("delete roadmap: %w", err)
		}
		return nil
	})
}

func (s *GormStore) CreateSkill(skill *models.Skill) error {
	if err := s.DB.Create(skill).Error; err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

func (s *GormStore) GetSkill(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := s.DB.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &skill, nil
}

// UpdateSkillStatus is a single-row update; concurrent writers are
// serialized by the database, nothing else is locked.
func (s *GormStore) UpdateSkillStatus(id uint, status string) (*models.Skill, error) {
	skill, err := s.GetSkill(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(skill).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update skill status: %w", err)
	}
	skill.Status = status
	return skill, nil
}

func (s *GormStore) CreateResource(res *models.Resource) error {
	if err := s.DB.Create(res).Error; err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

func (s *GormStore) ListCareerPaths(f CareerPathFilter) ([]models.CareerPath, error) {
	query := s.DB.Model(&models.CareerPath{})
	if f.Demand != "" {
		query = query.Where("demand_level = ?", f.Demand)
	}
	if f.Keyword != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?", "%"+f.Keyword+"%", "%"+f.Keyword+"%")
	}

	var paths []models.CareerPath
	if err := query.Order("id").Find(&paths).Error; err != nil {
		return nil, fmt.Errorf("list career paths: %w", err)
	}
	return paths, nil
}

func (s *GormStore) CreateCareerPath(p *models.CareerPath) error {
	if err := s.DB.Create(p).Error; err != nil {
		return fmt.Errorf("create career path: %w", err)
	}
	return nil
}

func (s *GormStore) SeedCareerPaths() error {
	var count int64
	if err := s.DB.Model(&models.CareerPath{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed career paths: %w", err)
	}
	if count > 0 {
		return nil
	}
	for i := range defaultCareerPaths {
		path := defaultCareerPaths[i]
		if err := s.CreateCareerPath(&path); err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}
