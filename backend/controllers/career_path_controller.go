package controllers

import (
	"skillcompass/backend/storage"
	"skillcompass/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CareerPathController struct {
	Store storage.Store
}

func NewCareerPathController(store storage.Store) *CareerPathController {
	return &CareerPathController{Store: store}
}

// List godoc
// @Summary List career paths
// @Description Returns the public career-path catalog, optionally filtered
// @Tags career-paths
// @Produce json
// @Success 200 {array} models.CareerPath
// @Router /career-paths [get]
func (cc *CareerPathController) List(c *fiber.Ctx) error {
	filter := storage.CareerPathFilter{
		Demand:  c.Query("demand"),
		Keyword: c.Query("q"),
	}

	paths, err := cc.Store.ListCareerPaths(filter)
	if err != nil {
		return utils.InternalServerError(c, "Could not load career paths")
	}
	return c.JSON(paths)
}
