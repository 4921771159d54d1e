package handler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) listAreas(c *fiber.Ctx) error {
	areas, err := h.Areas.List(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": areas})
}

func (h *Handler) createArea(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	area, err := h.Areas.Create(c.UserContext(), req.Name)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(area)
}

func (h *Handler) deleteArea(c *fiber.Ctx) error {
	if err := h.Areas.Delete(c.UserContext(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users, err := h.Users.List(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *Handler) reportStats(c *fiber.Ctx) error {
	stats, err := h.Reports.Stats(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}
