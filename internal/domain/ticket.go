package domain

import "time"

// Ticket is the sole persistent entity: one IT support request filed by a
// staff member. ID and CreatedAt are assigned by the store exactly once;
// UpdatedAt is refreshed on every successful update.
type Ticket struct {
	ID              string
	Date            time.Time
	StaffName       string
	Department      string
	Position        string
	Email           string
	TicketType      string
	Description     string
	Location        string
	IsResolved      bool
	NeedsEscalation bool
	Solution        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Departments is the closed set of department names a submitter may choose.
var Departments = []string{
	"HEALTH & SAFETY",
	"TRANSMISSION",
	"HR & ADMIN",
	"IT UNIT",
	"ASSETS & INFRASTRUCTURE",
	"TERMINAL",
	"FUEL TRADING",
	"PROCUREMENT & SUPPLY CHAIN MGT",
	"AUDIT",
	"FINANCE",
	"MD SEC",
	"MONITORING AND EVALUATION",
	"CORPERATE PLANNING",
	"LEGAL & COMPLIANCE",
}

// Locations is the closed set of issue locations.
var Locations = []string{
	"CONTROL ROOM",
	"SERVER ROOM",
	"ADMINISTRATION",
	"HR OFFICE",
	"DISPATCH OFFICE",
	"MAINTENANCE OFFICE",
	"SAFETY OFFICE",
	"COUNTRY MANAGER OFFICE",
	"DEPOT MANAGER OFFICE",
	"OMC OFFICE",
	"GRA OFFICE",
	"FIRE SERVICE OFFICE",
	"MCC ROOM",
	"OLD BAY",
	"NEW BAY",
	"GRANTRY",
	"PUMP HOUSE",
	"EXIT GATE",
	"ENTRY GATE",
	"DISCHARGE CAR PACK",
	"LOADING CAR PARK",
	"DIPPING PLATFORM",
	"NPA OFFICE",
	"SECURITY OFFICE",
	"PANEL ROOM",
}

// TicketTypes is the closed set of support categories.
var TicketTypes = []string{
	"PRINTER",
	"LAPTOP",
	"DESKTOP",
	"NETWORK",
	"INTERNET",
	"OFFICE SUITE",
	"EMAIL PASSWORD RESET",
	"PHONE APP INSTALLATIONS",
}

// IsValidDepartment reports membership in the department catalog.
func IsValidDepartment(v string) bool {
	return contains(Departments, v)
}

// IsValidLocation reports membership in the location catalog.
func IsValidLocation(v string) bool {
	return contains(Locations, v)
}

// IsValidTicketType reports membership in the ticket type catalog.
func IsValidTicketType(v string) bool {
	return contains(TicketTypes, v)
}

func contains(set []string, v string) bool {
	for _, member := range set {
		if member == v {
			return true
		}
	}
	return false
}
