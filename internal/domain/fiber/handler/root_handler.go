package handler

import (
	"github.com/fadilmartias/hr-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type RootHandler struct {
	name string
}

func NewRootHandler(name string) *RootHandler {
	return &RootHandler{name: name}
}

func (h *RootHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Root)
}

func (h *RootHandler) Root(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Welcome to the HR Application API!",
		Meta:    fiber.Map{"name": h.name},
	})
}
