package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// TicketService is the store facade: uniform create/list/update/delete over
// the tickets table. It has no awareness of authentication.
type TicketService struct {
	tickets repository.TicketRepository
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
}

// TicketCreateInput describes the submitter-supplied fields. Everything else
// (id, timestamps, resolution flags, solution) is defaulted by the store.
type TicketCreateInput struct {
	Date        time.Time
	StaffName   string
	Department  string
	Position    string
	Email       string
	TicketType  string
	Description string
	Location    string
}

// TicketUpdateInput carries any subset of mutable fields. Nil means
// "leave untouched".
type TicketUpdateInput struct {
	Date            *time.Time
	StaffName       *string
	Department      *string
	Position        *string
	Email           *string
	TicketType      *string
	Description     *string
	Location        *string
	IsResolved      *bool
	NeedsEscalation *bool
	Solution        *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{tickets: deps.TicketRepo}
}

// Create validates the submission and persists a new ticket, returning the
// fully materialized row including the store-assigned id and timestamps.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Date:        input.Date,
		StaffName:   strings.TrimSpace(input.StaffName),
		Department:  input.Department,
		Position:    strings.TrimSpace(input.Position),
		Email:       strings.TrimSpace(input.Email),
		TicketType:  input.TicketType,
		Description: strings.TrimSpace(input.Description),
		Location:    input.Location,
	}

	if ticket.Date.IsZero() {
		return nil, apperrors.NewValidationError("date is required")
	}
	if ticket.StaffName == "" || ticket.Position == "" || ticket.Email == "" || ticket.Description == "" {
		return nil, apperrors.NewValidationError("staff_name, position, email, description required")
	}
	if err := validateEnums(ticket.Department, ticket.Location, ticket.TicketType); err != nil {
		return nil, err
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// List returns all tickets, newest created first.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// Update applies the supplied fields to an existing ticket. The store always
// refreshes updated_at as part of the write; concurrent updates race and the
// later write wins.
func (s *TicketService) Update(ctx context.Context, id string, input TicketUpdateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("id is required")
	}
	if input.Department != nil && !domain.IsValidDepartment(*input.Department) {
		return nil, apperrors.NewValidationError("unknown department")
	}
	if input.Location != nil && !domain.IsValidLocation(*input.Location) {
		return nil, apperrors.NewValidationError("unknown location")
	}
	if input.TicketType != nil && !domain.IsValidTicketType(*input.TicketType) {
		return nil, apperrors.NewValidationError("unknown ticket type")
	}

	patch := repository.TicketPatch{
		Date:            input.Date,
		StaffName:       input.StaffName,
		Department:      input.Department,
		Position:        input.Position,
		Email:           input.Email,
		TicketType:      input.TicketType,
		Description:     input.Description,
		Location:        input.Location,
		IsResolved:      input.IsResolved,
		NeedsEscalation: input.NeedsEscalation,
		Solution:        input.Solution,
	}
	return s.tickets.Update(ctx, id, patch)
}

// Delete removes the ticket permanently. Whether the row existed is not
// reported.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("id is required")
	}
	return s.tickets.Delete(ctx, id)
}

func validateEnums(department, location, ticketType string) error {
	if !domain.IsValidDepartment(department) {
		return apperrors.NewValidationError("unknown department")
	}
	if !domain.IsValidLocation(location) {
		return apperrors.NewValidationError("unknown location")
	}
	if !domain.IsValidTicketType(ticketType) {
		return apperrors.NewValidationError("unknown ticket type")
	}
	return nil
}
