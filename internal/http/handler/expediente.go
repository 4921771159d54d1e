package handler

import (
	"github.com/gofiber/fiber/v2"

	"expedientes/internal/service"
)

type expedienteRequest struct {
	Number            string `json:"number"`
	State             string `json:"state"`
	AreaName          string `json:"area_name"`
	ResponsibleUserID string `json:"responsible_user_id"`
}

func (r expedienteRequest) input() service.ExpedienteInput {
	return service.ExpedienteInput{
		Number:            r.Number,
		State:             r.State,
		AreaName:          r.AreaName,
		ResponsibleUserID: r.ResponsibleUserID,
	}
}

func (h *Handler) listExpedientes(c *fiber.Ctx) error {
	res, err := h.Expedientes.List(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) getExpediente(c *fiber.Ctx) error {
	exp, err := h.Expedientes.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(exp)
}

func (h *Handler) createExpediente(c *fiber.Ctx) error {
	var req expedienteRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	exp, err := h.Expedientes.Create(c.UserContext(), req.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

func (h *Handler) updateExpediente(c *fiber.Ctx) error {
	var req expedienteRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	exp, err := h.Expedientes.Update(c.UserContext(), c.Params("id"), req.input())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(exp)
}

func (h *Handler) deleteExpediente(c *fiber.Ctx) error {
	if err := h.Expedientes.Delete(c.UserContext(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
