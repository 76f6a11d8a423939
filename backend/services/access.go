package services

import (
	"errors"

	"skillcompass/backend/models"
	"skillcompass/backend/storage"
)

// ErrForbidden means the resource exists but belongs to someone else.
// Not-found is reported first, so a non-owner probing an id learns that
// it exists but never sees its contents.
var ErrForbidden = errors.New("forbidden")

// AccessGate enforces roadmap ownership. A roadmap belongs to exactly one
// user; only the owner may read or mutate it.
type AccessGate struct {
	Store storage.Store
}

func NewAccessGate(store storage.Store) *AccessGate {
	return &AccessGate{Store: store}
}

func (g *AccessGate) AuthorizeRoadmap(userID string, roadmapID uint) (*models.FullRoadmap, error) {
	roadmap, err := g.Store.GetRoadmap(roadmapID)
	if err != nil {
		return nil, err
	}
	if roadmap.UserID != userID {
		return nil, ErrForbidden
	}
	return roadmap, nil
}

// AuthorizeSkill resolves skill -> roadmap -> owner before any skill
// mutation. Skill ids are not trusted on their own.
func (g *AccessGate) AuthorizeSkill(userID string, skillID uint) (*models.Skill, error) {
	skill, err := g.Store.GetSkill(skillID)
	if err != nil {
		return nil, err
	}
	roadmap, err := g.Store.GetRoadmap(skill.RoadmapID)
	if err != nil {
		return nil, err
	}
	if roadmap.UserID != userID {
		return nil, ErrForbidden
	}
	return skill, nil
}
