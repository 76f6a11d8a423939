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

type RoadmapController struct {
	Service *services.RoadmapService
	Gate    *services.AccessGate
	Store   storage.Store
	Cfg     *config.Config
}

func NewRoadmapController(service *services.RoadmapService, gate *services.AccessGate, store storage.Store, cfg *config.Config) *RoadmapController {
	return &RoadmapController{Service: service, Gate: gate, Store: store, Cfg: cfg}
}

type generateRoadmapRequest struct {
	Role         string `json:"role"`
	Goal         string `json:"goal"`
	CurrentLevel string `json:"currentLevel"`
}

// Generate godoc
// @Summary Generate a roadmap
// @Description Generates and persists a learning roadmap for the target role
// @Tags roadmaps
// @Accept json
// @Produce json
// @Success 201 {object} models.FullRoadmap
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /roadmaps/generate [post]
func (rc *RoadmapController) Generate(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req generateRoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	full, err := rc.Service.Generate(userID, req.Role, req.Goal, req.CurrentLevel)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, "Failed to generate roadmap")
	}

	return c.Status(fiber.StatusCreated).JSON(full)
}

func (rc *RoadmapController) List(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	roadmaps, err := rc.Store.GetUserRoadmaps(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not load roadmaps")
	}
	return c.JSON(roadmaps)
}

func (rc *RoadmapController) Get(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid roadmap ID")
	}

	full, err := rc.Gate.AuthorizeRoadmap(userID, uint(id))
	if err != nil {
		return roadmapAccessError(c, err)
	}
	return c.JSON(full)
}

func (rc *RoadmapController) Delete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid roadmap ID")
	}

	if _, err := rc.Gate.AuthorizeRoadmap(userID, uint(id)); err != nil {
		return roadmapAccessError(c, err)
	}
	if err := rc.Store.DeleteRoadmap(uint(id)); err != nil {
		return utils.InternalServerError(c, "Could not delete roadmap")
	}
	return utils.NoContent(c)
}

// GetProgress returns the derived completion summary for one roadmap.
func (rc *RoadmapController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid roadmap ID")
	}

	full, err := rc.Gate.AuthorizeRoadmap(userID, uint(id))
	if err != nil {
		return roadmapAccessError(c, err)
	}
	return c.JSON(services.Progress(full.Skills))
}

func roadmapAccessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return utils.NotFound(c, "Roadmap not found")
	case errors.Is(err, services.ErrForbidden):
		return utils.Forbidden(c, "Forbidden")
	}
	return utils.InternalServerError(c, "Could not load roadmap")
}
