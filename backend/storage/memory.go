package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"skillcompass/backend/models"
)

// MemStore is an in-memory Store with the same ordering and cascade
// semantics as GormStore. It backs the test suites and keeps the
// services layer free of any hidden process-wide state.
type MemStore struct {
	mu          sync.Mutex
	roadmaps    map[uint]models.Roadmap
	skills      map[uint]models.Skill
	resources   map[uint]models.Resource
	careerPaths map[uint]models.CareerPath

	nextRoadmapID    uint
	nextSkillID      uint
	nextResourceID   uint
	nextCareerPathID uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		roadmaps:         make(map[uint]models.Roadmap),
		skills:           make(map[uint]models.Skill),
		resources:        make(map[uint]models.Resource),
		careerPaths:      make(map[uint]models.CareerPath),
		nextRoadmapID:    1,
		nextSkillID:      1,
		nextResourceID:   1,
		nextCareerPathID: 1,
	}
}

func (s *MemStore) CreateRoadmap(r *models.Roadmap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextRoadmapID
	s.nextRoadmapID++
	if r.Status == "" {
		r.Status = models.RoadmapStatusActive
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.roadmaps[r.ID] = *r
	return nil
}

func (s *MemStore) GetRoadmap(id uint) (*models.FullRoadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roadmap, ok := s.roadmaps[id]
	if !ok {
		return nil, ErrNotFound
	}

	var skills []models.Skill
	for _, skill := range s.skills {
		if skill.RoadmapID == id {
			skills = append(skills, skill)
		}
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Order != skills[j].Order {
			return skills[i].Order < skills[j].Order
		}
		return skills[i].ID < skills[j].ID
	})

	full := &models.FullRoadmap{
		Roadmap: roadmap,
		Skills:  make([]models.SkillWithResources, 0, len(skills)),
	}
	for _, skill := range skills {
		var resources []models.Resource
		for _, res := range s.resources {
			if res.SkillID == skill.ID {
				resources = append(resources, res)
			}
		}
		sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
		full.Skills = append(full.Skills, models.SkillWithResources{Skill: skill, Resources: resources})
	}
	return full, nil
}

func (s *MemStore) GetUserRoadmaps(userID string) ([]models.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roadmaps := make([]models.Roadmap, 0)
	for _, r := range s.roadmaps {
		if r.UserID == userID {
			roadmaps = append(roadmaps, r)
		}
	}
	sort.Slice(roadmaps, func(i, j int) bool {
		if !roadmaps[i].CreatedAt.Equal(roadmaps[j].CreatedAt) {
			return roadmaps[i].CreatedAt.Before(roadmaps[j].CreatedAt)
		}
		return roadmaps[i].ID < roadmaps[j].ID
	})
	return roadmaps, nil
}

func (s *MemStore) DeleteRoadmap(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roadmaps[id]; !ok {
		return ErrNotFound
	}
	for skillID, skill := range s.skills {
		if skill.RoadmapID != id {
			continue
		}
		for resID, res := range s.resources {
			if res.SkillID == skillID {
				delete(s.resources, resID)
			}
		}
		delete(s.skills, skillID)
	}
	delete(s.roadmaps, id)
	return nil
}

func (s *MemStore) CreateSkill(skill *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill.ID = s.nextSkillID
	s.nextSkillID++
	if skill.Status == "" {
		skill.Status = models.SkillStatusPending
	}
	s.skills[skill.ID] = *skill
	return nil
}

func (s *MemStore) GetSkill(id uint) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &skill, nil
}

func (s *MemStore) UpdateSkillStatus(id uint, status string) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	skill.Status = status
	s.skills[id] = skill
	return &skill, nil
}

func (s *MemStore) CreateResource(res *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.ID = s.nextResourceID
	s.nextResourceID++
	s.resources[res.ID] = *res
	return nil
}

func (s *MemStore) ListCareerPaths(f CareerPathFilter) ([]models.CareerPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]models.CareerPath, 0)
	for _, p := range s.careerPaths {
		if f.Demand != "" && p.DemandLevel != f.Demand {
			continue
		}
		if f.Keyword != "" {
			keyword := strings.ToLower(f.Keyword)
			if !strings.Contains(strings.ToLower(p.Title), keyword) &&
				!strings.Contains(strings.ToLower(p.Description), keyword) {
				continue
			}
		}
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].ID < paths[j].ID })
	return paths, nil
}

func (s *MemStore) CreateCareerPath(p *models.CareerPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextCareerPathID
	s.nextCareerPathID++
	s.careerPaths[p.ID] = *p
	return nil
}

func (s *MemStore) SeedCareerPaths() error {
	s.mu.Lock()
	empty := len(s.careerPaths) == 0
	s.mu.Unlock()

	if !empty {
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

// Transaction takes a snapshot and restores it if fn fails. Writes are
// commit-or-restore as a unit; readers in other goroutines are not
// isolated from intermediate state, which is enough for a test double.
func (s *MemStore) Transaction(fn func(Store) error) error {
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type memSnapshot struct {
	roadmaps    map[uint]models.Roadmap
	skills      map[uint]models.Skill
	resources   map[uint]models.Resource
	careerPaths map[uint]models.CareerPath

	nextRoadmapID    uint
	nextSkillID      uint
	nextResourceID   uint
	nextCareerPathID uint
}

func (s *MemStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return memSnapshot{
		roadmaps:         copyMap(s.roadmaps),
		skills:           copyMap(s.skills),
		resources:        copyMap(s.resources),
		careerPaths:      copyMap(s.careerPaths),
		nextRoadmapID:    s.nextRoadmapID,
		nextSkillID:      s.nextSkillID,
		nextResourceID:   s.nextResourceID,
		nextCareerPathID: s.nextCareerPathID,
	}
}

func (s *MemStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roadmaps = snap.roadmaps
	s.skills = snap.skills
	s.resources = snap.resources
	s.careerPaths = snap.careerPaths
	s.nextRoadmapID = snap.nextRoadmapID
	s.nextSkillID = snap.nextSkillID
	s.nextResourceID = snap.nextResourceID
	s.nextCareerPathID = snap.nextCareerPathID
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
