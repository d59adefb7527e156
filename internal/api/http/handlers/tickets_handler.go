package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/report"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

const dateLayout = "2006-01-02"

// TicketsHandler manages the ticket CRUD surface and the CSV report.
type TicketsHandler struct {
	service *service.TicketService
	now     func() time.Time
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService, now: time.Now}
}

// Create POST /api/tickets. Public: submitters are not authenticated.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return apperrors.NewValidationError("date must be formatted YYYY-MM-DD")
	}

	ticket, err := h.service.Create(c.UserContext(), service.TicketCreateInput{
		Date:        date,
		StaffName:   req.StaffName,
		Department:  req.Department,
		Position:    req.Position,
		Email:       req.Email,
		TicketType:  req.TicketType,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewTicketResponse(ticket),
	})
}

// List GET /api/tickets. Newest created first.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Update PATCH /api/tickets/:id. Accepts any subset of mutable fields.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.TicketUpdateInput{
		StaffName:       req.StaffName,
		Department:      req.Department,
		Position:        req.Position,
		Email:           req.Email,
		TicketType:      req.TicketType,
		Description:     req.Description,
		Location:        req.Location,
		IsResolved:      req.IsResolved,
		NeedsEscalation: req.NeedsEscalation,
		Solution:        req.Solution,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return apperrors.NewValidationError("date must be formatted YYYY-MM-DD")
		}
		input.Date = &date
	}

	ticket, err := h.service.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewTicketResponse(ticket)})
}

// Delete DELETE /api/tickets/:id. Hard delete; reports bare success.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Report GET /api/tickets/report. Pure transform of the list result into a
// dated CSV download; the store is untouched.
func (h *TicketsHandler) Report(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}

	csv := report.BuildCSV(tickets)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename(h.now())))
	return c.SendString(csv)
}
