package controllers

import (
	"errors"
	"strconv"

	"skillcompass/backend/config"
	"skillcompass/backend/services"
	"skillcompass/backend/storage"
	"skillcompass/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SkillController struct {
	Gate  *services.AccessGate
	Store storage.Store
	Cfg   *config.Config
}

func NewSkillController(gate *services.AccessGate, store storage.Store, cfg *config.Config) *SkillController {
	return &SkillController{Gate: gate, Store: store, Cfg: cfg}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus godoc
// @Summary Update skill status
// @Description Sets a skill's status; only the owner of the parent roadmap may do so
// @Tags skills
// @Accept json
// @Produce json
// @Success 200 {object} models.Skill
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /skills/{id}/status [patch]
func (sc *SkillController) UpdateStatus(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid skill ID")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !services.ValidSkillStatus(req.Status) {
		return utils.BadRequest(c, "Invalid status")
	}

	// Skill ids are authorized through their parent roadmap's owner.
	if _, err := sc.Gate.AuthorizeSkill(userID, uint(id)); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return utils.NotFound(c, "Skill not found")
		case errors.Is(err, services.ErrForbidden):
			return utils.Forbidden(c, "Forbidden")
		}
		return utils.InternalServerError(c, "Could not load skill")
	}

	skill, err := sc.Store.UpdateSkillStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Skill not found")
		}
		return utils.InternalServerError(c, "Could not update skill")
	}
	return c.JSON(skill)
}
