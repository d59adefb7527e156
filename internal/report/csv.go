// Package report derives a byte-stable CSV snapshot from a ticket list.
// It is a pure transform: no store access, no side effects.
package report

import (
	"strings"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Header is the fixed column order of the export.
const Header = "Ticket ID,Created Date,Issue Date,Staff Name,Department,Position,Email,Ticket Type,Description,Location,Status,Escalated,Solution,Last Updated"

// Filename embeds the export date.
func Filename(now time.Time) string {
	return "tickets_report_" + now.Format("2006-01-02") + ".csv"
}

// BuildCSV renders one row per ticket in input order. Free-form fields
// (description, solution) and the rendered timestamps are always quoted with
// internal double-quotes doubled; the remaining fields are emitted raw. The
// timestamp rendering is lossy on purpose: the report is not re-importable.
func BuildCSV(tickets []domain.Ticket) string {
	lines := make([]string, 0, len(tickets)+1)
	lines = append(lines, Header)

	for _, t := range tickets {
		solution := "N/A"
		if t.Solution != nil {
			solution = quote(*t.Solution)
		}
		status := "Open"
		if t.IsResolved {
			status = "Resolved"
		}
		escalated := "No"
		if t.NeedsEscalation {
			escalated = "Yes"
		}

		fields := []string{
			t.ID,
			quote(formatTimestamp(t.CreatedAt)),
			t.Date.Format("2006-01-02"),
			t.StaffName,
			t.Department,
			t.Position,
			t.Email,
			t.TicketType,
			quote(t.Description),
			t.Location,
			status,
			escalated,
			solution,
			quote(formatTimestamp(t.UpdatedAt)),
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTimestamp(t time.Time) string {
	return t.Format("1/2/2006 3:04:05 PM")
}
