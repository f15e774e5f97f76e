package models

import "time"

// DateKeyFormat is the key layout used for date-set membership.
const DateKeyFormat = "2006-01-02"

// DisplayDateFormat is the DD/MM/YYYY format used in rota output.
const DisplayDateFormat = "02/01/2006"

// DateSet is a set of calendar dates keyed by ISO day strings.
type DateSet map[string]bool

// DateKey returns the set key for a date.
func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// NewDateSet builds a set from the given dates.
func NewDateSet(dates ...time.Time) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[DateKey(d)] = true
	}
	return set
}

// Contains reports whether the set holds the given date.
func (s DateSet) Contains(t time.Time) bool {
	return s[DateKey(t)]
}

// Add inserts a date into the set.
func (s DateSet) Add(t time.Time) {
	s[DateKey(t)] = true
}

// StaffMember represents a person eligible for front-desk shifts.
// AssignedDates and ShiftCount are per-run state, reset at the start
// of each generation run. len(AssignedDates) == ShiftCount always holds
// while a run is in progress.
type StaffMember struct {
	Name          string  `json:"name"`
	OfficeDays    []int   `json:"office_days"` // 0=Monday .. 4=Friday
	Holidays      DateSet `json:"-"`
	AssignedDates DateSet `json:"-"`
	ShiftCount    int     `json:"shift_count"`
}

// ResetRun clears the per-run assignment state.
func (m *StaffMember) ResetRun() {
	m.AssignedDates = make(DateSet)
	m.ShiftCount = 0
}

// WorksOn reports whether weekday (0=Monday..6=Sunday) is one of the
// member's office days.
func (m *StaffMember) WorksOn(weekday int) bool {
	for _, d := range m.OfficeDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// ShiftStatus distinguishes real assignments from sentinel entries.
type ShiftStatus string

const (
	ShiftAssigned   ShiftStatus = "assigned"
	ShiftClosed     ShiftStatus = "closed"
	ShiftUnassigned ShiftStatus = "unassigned"
)

// Shift is the outcome of a single working day: either a staff member
// or one of the CLOSED/UNASSIGNED sentinels.
type Shift struct {
	Status    ShiftStatus `json:"status"`
	StaffName string      `json:"staff_name,omitempty"`
}

// Display renders the shift the way the rota table prints it.
func (s Shift) Display() string {
	switch s.Status {
	case ShiftClosed:
		return "CLOSED"
	case ShiftUnassigned:
		return "UNASSIGNED"
	default:
		return s.StaffName
	}
}

// Assigned returns a Shift for a named staff member.
func Assigned(name string) Shift {
	return Shift{Status: ShiftAssigned, StaffName: name}
}

// Entry is one row of the generated rota, created once per working day
// and never mutated afterwards.
type Entry struct {
	Date  string `json:"date"` // DD/MM/YYYY
	Day   string `json:"day"`  // weekday name
	Shift Shift  `json:"shift"`
	Notes string `json:"notes"`
}

// StaffSummary is the per-staff total for one run.
type StaffSummary struct {
	Name       string `json:"name"`
	ShiftCount int    `json:"shift_count"`
}

// StaffInput is the wire form of a staff member: office days as
// 0=Monday..4=Friday indices, holidays as DD/MM/YYYY strings.
type StaffInput struct {
	Name       string   `json:"name"`
	OfficeDays []int    `json:"office_days"`
	Holidays   []string `json:"holidays"`
}

// RotaRequest is the input for the rota generation endpoints. When
// Staff is empty the persisted roster is used.
type RotaRequest struct {
	Year        int          `json:"year"`
	Month       int          `json:"month"`
	Staff       []StaffInput `json:"staff"`
	ClosureDays []string     `json:"closure_days"` // DD/MM/YYYY
}

// RotaResponse is the full result of a generation run.
type RotaResponse struct {
	Rota     []Entry        `json:"rota"`
	Warnings []string       `json:"warnings"`
	Summary  []StaffSummary `json:"summary"`
}
