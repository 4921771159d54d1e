package handler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}

	res, err := h.Auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"token": res.Token,
		"user": fiber.Map{
			"id":       res.User.ID,
			"username": res.User.Username,
		},
	})
}
