package controllers

import (
	"skillcompass/backend/config"
	"skillcompass/backend/services"
	"skillcompass/backend/storage"
	"skillcompass/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store storage.Store
	Cfg   *config.Config
}

func NewProgressController(store storage.Store, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: store, Cfg: cfg}
}

// GetOverview godoc
// @Summary Get progress overview
// @Description Returns completion totals across all of the user's roadmaps
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetOverview(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	roadmaps, err := pc.Store.GetUserRoadmaps(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load roadmaps")
	}

	totalSkills := 0
	completedSkills := 0
	for _, roadmap := range roadmaps {
		full, err := pc.Store.GetRoadmap(roadmap.ID)
		if err != nil {
			return utils.InternalServerError(c, "Could not load roadmap")
		}
		summary := services.Progress(full.Skills)
		totalSkills += summary.Total
		completedSkills += summary.Completed
	}

	percent := 0.0
	if totalSkills > 0 {
		percent = float64(completedSkills) / float64(totalSkills) * 100
	}

	return c.JSON(fiber.Map{
		"roadmaps":        len(roadmaps),
		"totalSkills":     totalSkills,
		"completedSkills": completedSkills,
		"percent":         percent,
	})
}
