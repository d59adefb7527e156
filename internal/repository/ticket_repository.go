package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk/internal/domain"
)

const ticketColumns = `id, date, staff_name, department, position, email, ticket_type,
               description, location, is_resolved, needs_escalation, solution, created_at, updated_at`

// TicketPatch carries the subset of mutable fields supplied to an update.
// Nil fields are left untouched; updated_at is always refreshed by the store.
type TicketPatch struct {
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

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	List(ctx context.Context) ([]domain.Ticket, error)
	Update(ctx context.Context, id string, patch TicketPatch) (*domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (date, staff_name, department, position, email, ticket_type, description, location)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, is_resolved, needs_escalation, solution, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Date,
		ticket.StaffName,
		ticket.Department,
		ticket.Position,
		ticket.Email,
		ticket.TicketType,
		ticket.Description,
		ticket.Location,
	).Scan(
		&ticket.ID,
		&ticket.IsResolved,
		&ticket.NeedsEscalation,
		&ticket.Solution,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}

// List returns every ticket ordered newest first. The ordering is a contract:
// the admin view and the CSV report both rely on it.
func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets ORDER BY created_at DESC`, ticketColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Update(ctx context.Context, id string, patch TicketPatch) (*domain.Ticket, error) {
	sets := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Date != nil {
		addSet("date", *patch.Date)
	}
	if patch.StaffName != nil {
		addSet("staff_name", *patch.StaffName)
	}
	if patch.Department != nil {
		addSet("department", *patch.Department)
	}
	if patch.Position != nil {
		addSet("position", *patch.Position)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.TicketType != nil {
		addSet("ticket_type", *patch.TicketType)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Location != nil {
		addSet("location", *patch.Location)
	}
	if patch.IsResolved != nil {
		addSet("is_resolved", *patch.IsResolved)
	}
	if patch.NeedsEscalation != nil {
		addSet("needs_escalation", *patch.NeedsEscalation)
	}
	if patch.Solution != nil {
		addSet("solution", *patch.Solution)
	}

	// updated_at is refreshed on every write, supplied fields or not.
	sets = append(sets, "updated_at=now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tickets SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), ticketColumns)

	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, args...), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Delete removes the row permanently. Deleting an absent id is not an error.
func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.Date,
		&ticket.StaffName,
		&ticket.Department,
		&ticket.Position,
		&ticket.Email,
		&ticket.TicketType,
		&ticket.Description,
		&ticket.Location,
		&ticket.IsResolved,
		&ticket.NeedsEscalation,
		&ticket.Solution,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
