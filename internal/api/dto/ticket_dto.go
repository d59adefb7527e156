package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// CreateTicketRequest is the public submission payload.
type CreateTicketRequest struct {
	Date        string `json:"date" validate:"required"`
	StaffName   string `json:"staff_name" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	TicketType  string `json:"ticket_type" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

// UpdateTicketRequest carries a partial ticket; absent fields stay untouched.
type UpdateTicketRequest struct {
	Date            *string `json:"date"`
	StaffName       *string `json:"staff_name"`
	Department      *string `json:"department"`
	Position        *string `json:"position"`
	Email           *string `json:"email" validate:"omitempty,email"`
	TicketType      *string `json:"ticket_type"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	IsResolved      *bool   `json:"is_resolved"`
	NeedsEscalation *bool   `json:"needs_escalation"`
	Solution        *string `json:"solution"`
}

// TicketResponse is the wire representation of a ticket.
type TicketResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	StaffName       string    `json:"staff_name"`
	Department      string    `json:"department"`
	Position        string    `json:"position"`
	Email           string    `json:"email"`
	TicketType      string    `json:"ticket_type"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	IsResolved      bool      `json:"is_resolved"`
	NeedsEscalation bool      `json:"needs_escalation"`
	Solution        *string   `json:"solution"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewTicketResponse maps the domain entity onto the wire shape.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:              ticket.ID,
		Date:            ticket.Date.Format("2006-01-02"),
		StaffName:       ticket.StaffName,
		Department:      ticket.Department,
		Position:        ticket.Position,
		Email:           ticket.Email,
		TicketType:      ticket.TicketType,
		Description:     ticket.Description,
		Location:        ticket.Location,
		IsResolved:      ticket.IsResolved,
		NeedsEscalation: ticket.NeedsEscalation,
		Solution:        ticket.Solution,
		CreatedAt:       ticket.CreatedAt,
		UpdatedAt:       ticket.UpdatedAt,
	}
}
