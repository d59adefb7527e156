package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/repository"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// memTicketRepo mimics the store contract: id/timestamps assigned on create,
// updated_at refreshed on every update, row-level last-write-wins.
type memTicketRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[string]*domain.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{rows: make(map[string]*domain.Ticket)}
}

func (m *memTicketRepo) tick() time.Time {
	m.seq++
	return time.Unix(1700000000, 0).UTC().Add(time.Duration(m.seq) * time.Second)
}

func (m *memTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ticket.ID = uuid.NewString()
	now := m.tick()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	ticket.IsResolved = false
	ticket.NeedsEscalation = false
	ticket.Solution = nil
	cp := *ticket
	m.rows[ticket.ID] = &cp
	return nil
}

func (m *memTicketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Ticket, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memTicketRepo) Update(_ context.Context, id string, patch repository.TicketPatch) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.StaffName != nil {
		row.StaffName = *patch.StaffName
	}
	if patch.Department != nil {
		row.Department = *patch.Department
	}
	if patch.Position != nil {
		row.Position = *patch.Position
	}
	if patch.Email != nil {
		row.Email = *patch.Email
	}
	if patch.TicketType != nil {
		row.TicketType = *patch.TicketType
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.Location != nil {
		row.Location = *patch.Location
	}
	if patch.IsResolved != nil {
		row.IsResolved = *patch.IsResolved
	}
	if patch.NeedsEscalation != nil {
		row.NeedsEscalation = *patch.NeedsEscalation
	}
	if patch.Solution != nil {
		solution := *patch.Solution
		row.Solution = &solution
	}
	row.UpdatedAt = m.tick()
	cp := *row
	return &cp, nil
}

func (m *memTicketRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func validCreateInput() TicketCreateInput {
	return TicketCreateInput{
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		StaffName:   "Kofi Boateng",
		Department:  "FINANCE",
		Position:    "Accountant",
		Email:       "kofi@example.com",
		TicketType:  "LAPTOP",
		Description: "Laptop will not boot",
		Location:    "ADMINISTRATION",
	}
}

func newTestTicketService() (*TicketService, *memTicketRepo) {
	repo := newMemTicketRepo()
	return NewTicketService(TicketDependencies{TicketRepo: repo}), repo
}

func TestCreateMaterializesTicket(t *testing.T) {
	svc, _ := newTestTicketService()

	ticket, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.False(t, ticket.CreatedAt.IsZero())
	assert.Equal(t, ticket.CreatedAt, ticket.UpdatedAt)
	assert.False(t, ticket.IsResolved)
	assert.False(t, ticket.NeedsEscalation)
	assert.Nil(t, ticket.Solution)
	assert.Equal(t, "Kofi Boateng", ticket.StaffName)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestTicketService()

	tests := []struct {
		name   string
		mutate func(*TicketCreateInput)
	}{
		{"missing date", func(in *TicketCreateInput) { in.Date = time.Time{} }},
		{"missing staff name", func(in *TicketCreateInput) { in.StaffName = "  " }},
		{"missing description", func(in *TicketCreateInput) { in.Description = "" }},
		{"unknown department", func(in *TicketCreateInput) { in.Department = "CATERING" }},
		{"unknown location", func(in *TicketCreateInput) { in.Location = "ROOFTOP" }},
		{"unknown ticket type", func(in *TicketCreateInput) { in.TicketType = "COFFEE" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestTicketService()

	first, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	third, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	tickets, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, third.ID, tickets[0].ID)
	assert.Equal(t, second.ID, tickets[1].ID)
	assert.Equal(t, first.ID, tickets[2].ID)
	for i := 1; i < len(tickets); i++ {
		assert.False(t, tickets[i].CreatedAt.After(tickets[i-1].CreatedAt))
	}
}

func TestUpdateFrameCondition(t *testing.T) {
	svc, _ := newTestTicketService()

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	resolved := true
	updated, err := svc.Update(context.Background(), created.ID, TicketUpdateInput{IsResolved: &resolved})
	require.NoError(t, err)

	// only is_resolved and updated_at change
	assert.True(t, updated.IsResolved)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.StaffName, updated.StaffName)
	assert.Equal(t, created.Department, updated.Department)
	assert.Equal(t, created.Position, updated.Position)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.TicketType, updated.TicketType)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Location, updated.Location)
	assert.Equal(t, created.NeedsEscalation, updated.NeedsEscalation)
	assert.Nil(t, updated.Solution)
}

func TestUpdateLastWriteWins(t *testing.T) {
	svc, _ := newTestTicketService()

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	// two racing updates with an overlapping field: the later write's value
	// survives silently, the earlier write's disjoint field is preserved
	firstDesc := "first writer"
	escalate := true
	_, err = svc.Update(context.Background(), created.ID, TicketUpdateInput{
		Description:     &firstDesc,
		NeedsEscalation: &escalate,
	})
	require.NoError(t, err)

	secondDesc := "second writer"
	final, err := svc.Update(context.Background(), created.ID, TicketUpdateInput{Description: &secondDesc})
	require.NoError(t, err)

	assert.Equal(t, "second writer", final.Description)
	assert.True(t, final.NeedsEscalation)
}

func TestUpdateSolutionWithoutResolving(t *testing.T) {
	svc, _ := newTestTicketService()

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	solution := "swap the dock"
	updated, err := svc.Update(context.Background(), created.ID, TicketUpdateInput{Solution: &solution})
	require.NoError(t, err)

	// solution without is_resolved=true is an allowed state
	require.NotNil(t, updated.Solution)
	assert.Equal(t, "swap the dock", *updated.Solution)
	assert.False(t, updated.IsResolved)
}

func TestUpdateMissingID(t *testing.T) {
	svc, _ := newTestTicketService()

	resolved := true
	_, err := svc.Update(context.Background(), uuid.NewString(), TicketUpdateInput{IsResolved: &resolved})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateRejectsUnknownEnums(t *testing.T) {
	svc, _ := newTestTicketService()

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	bad := "CATERING"
	_, err = svc.Update(context.Background(), created.ID, TicketUpdateInput{Department: &bad})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestDeleteRemovesTicket(t *testing.T) {
	svc, _ := newTestTicketService()

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	tickets, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, ticket := range tickets {
		assert.NotEqual(t, created.ID, ticket.ID)
	}

	// deleting an absent id reports bare success
	assert.NoError(t, svc.Delete(context.Background(), created.ID))
}
