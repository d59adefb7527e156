package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// MetaHandler serves the closed option catalogs the submission form renders.
type MetaHandler struct{}

// NewMetaHandler returns a new handler instance.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Options GET /api/meta/options.
func (h *MetaHandler) Options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"departments":  domain.Departments,
			"locations":    domain.Locations,
			"ticket_types": domain.TicketTypes,
		},
	})
}
