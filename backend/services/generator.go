package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"skillcompass/backend/models"
	"skillcompass/backend/storage"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrGenerationFailed = errors.New("roadmap generation failed")
)

// minGoalLength keeps one-word goals out of the prompt.
const minGoalLength = 10

// RoadmapService is the assembly pipeline: validate the request, ask the
// oracle for skills, persist the aggregate, return it freshly re-read.
type RoadmapService struct {
	Store  storage.Store
	Oracle Oracle
	Logger *log.Logger
}

func NewRoadmapService(store storage.Store, oracle Oracle, logger *log.Logger) *RoadmapService {
	return &RoadmapService{Store: store, Oracle: oracle, Logger: logger}
}

// Generate turns a free-text goal into a persisted roadmap owned by userID.
// The oracle is consulted before any row is written, so an oracle failure
// leaves no trace. The roadmap, its skills and their resources are written
// inside one store transaction: a partial insert failure rolls the whole
// aggregate back.
func (rs *RoadmapService) Generate(userID, role, goal, currentLevel string) (*models.FullRoadmap, error) {
	if err := validateGenerateInput(role, goal, currentLevel); err != nil {
		return nil, err
	}

	generated, err := rs.Oracle.GenerateSkills(role, goal, currentLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	roadmap := models.Roadmap{
		UserID: userID,
		Role:   role,
		Goal:   goal,
		Status: models.RoadmapStatusActive,
	}
	err = rs.Store.Transaction(func(tx storage.Store) error {
		if err := tx.CreateRoadmap(&roadmap); err != nil {
			return err
		}
		// Skills are persisted in the order the oracle returned them,
		// resources within a skill likewise. Order stays at its zero
		// default; display order is insertion order.
		for _, gs := range generated {
			skill := models.Skill{
				RoadmapID:   roadmap.ID,
				Name:        gs.Name,
				Description: gs.Description,
				Category:    gs.Category,
				Level:       gs.Level,
				Status:      models.SkillStatusPending,
			}
			if err := tx.CreateSkill(&skill); err != nil {
				return err
			}
			for _, gr := range gs.Resources {
				res := models.Resource{
					SkillID: skill.ID,
					Title:   gr.Title,
					URL:     gr.URL,
					Type:    gr.Type,
				}
				if err := tx.CreateResource(&res); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist roadmap: %w", err)
	}

	rs.Logger.Printf("generated roadmap %d for user %s with %d skills", roadmap.ID, userID, len(generated))
	return rs.Store.GetRoadmap(roadmap.ID)
}

func validateGenerateInput(role, goal, currentLevel string) error {
	switch {
	case strings.TrimSpace(role) == "":
		return fmt.Errorf("%w: role is required", ErrInvalidInput)
	case len(strings.TrimSpace(goal)) < minGoalLength:
		return fmt.Errorf("%w: goal must be at least %d characters", ErrInvalidInput, minGoalLength)
	case strings.TrimSpace(currentLevel) == "":
		return fmt.Errorf("%w: currentLevel is required", ErrInvalidInput)
	}
	return nil
}
