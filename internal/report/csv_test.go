package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func sampleTicket() domain.Ticket {
	return domain.Ticket{
		ID:          "11111111-2222-3333-4444-555555555555",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		StaffName:   "Ama Mensah",
		Department:  "IT UNIT",
		Position:    "Analyst",
		Email:       "ama@example.com",
		TicketType:  "PRINTER",
		Description: "Printer offline",
		Location:    "SERVER ROOM",
		CreatedAt:   time.Date(2024, 1, 15, 14, 30, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 15, 14, 30, 5, 0, time.UTC),
	}
}

func TestBuildCSVHeader(t *testing.T) {
	out := BuildCSV(nil)
	assert.Equal(t, Header, out)
	assert.Equal(t, "Ticket ID,Created Date,Issue Date,Staff Name,Department,Position,Email,Ticket Type,Description,Location,Status,Escalated,Solution,Last Updated", Header)
}

func TestBuildCSVQuoting(t *testing.T) {
	ticket := sampleTicket()
	ticket.Description = `He said "fix it" now, please`

	out := BuildCSV([]domain.Ticket{ticket})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `11111111-2222-3333-4444-555555555555,`+
		`"1/15/2024 2:30:05 PM",`+
		`2024-01-10,Ama Mensah,IT UNIT,Analyst,ama@example.com,PRINTER,`+
		`"He said ""fix it"" now, please",`+
		`SERVER ROOM,Open,No,N/A,`+
		`"1/15/2024 2:30:05 PM"`, lines[1])
}

func TestBuildCSVResolvedAndSolution(t *testing.T) {
	ticket := sampleTicket()
	ticket.IsResolved = true
	ticket.NeedsEscalation = true
	solution := `Replaced toner, power-cycled`
	ticket.Solution = &solution

	out := BuildCSV([]domain.Ticket{ticket})
	row := strings.Split(out, "\n")[1]
	assert.Contains(t, row, ",Resolved,Yes,")
	assert.Contains(t, row, `"Replaced toner, power-cycled"`)
	assert.NotContains(t, row, "N/A")
}

func TestBuildCSVSolutionWithoutResolved(t *testing.T) {
	// solution present while still open is an allowed state and must render as-is
	ticket := sampleTicket()
	solution := "pending confirmation"
	ticket.Solution = &solution

	row := strings.Split(BuildCSV([]domain.Ticket{ticket}), "\n")[1]
	assert.Contains(t, row, ",Open,")
	assert.Contains(t, row, `"pending confirmation"`)
}

func TestBuildCSVPreservesInputOrder(t *testing.T) {
	first := sampleTicket()
	first.ID = "id-newest"
	second := sampleTicket()
	second.ID = "id-older"

	lines := strings.Split(BuildCSV([]domain.Ticket{first, second}), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "id-newest,"))
	assert.True(t, strings.HasPrefix(lines[2], "id-older,"))
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "tickets_report_2024-03-07.csv", Filename(now))
}
