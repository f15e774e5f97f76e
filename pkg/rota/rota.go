package rota

import (
	"math/rand"
	"strings"
	"time"

	"github.com/oharris/rota-api-go/pkg/calendar"
	"github.com/oharris/rota-api-go/pkg/models"
)

// ClosureNote is the annotation written on university closure days.
const ClosureNote = "University Closure"

// PickFunc chooses one staff member from a non-empty set of tied
// candidates. The default is uniform random; tests and reproducible
// runs can supply PickFirst instead.
type PickFunc func(candidates []*models.StaffMember) *models.StaffMember

// PickFirst selects the first candidate in listed order.
func PickFirst(candidates []*models.StaffMember) *models.StaffMember {
	return candidates[0]
}

// Generator produces one front-desk assignment per working day,
// balancing shift counts and avoiding back-to-back assignment of the
// same person where possible.
type Generator struct {
	pick PickFunc
}

// NewGenerator creates a generator with a uniform random tie-break.
func NewGenerator() *Generator {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Generator{
		pick: func(candidates []*models.StaffMember) *models.StaffMember {
			return candidates[r.Intn(len(candidates))]
		},
	}
}

// NewGeneratorWithPick creates a generator with a custom tie-break.
func NewGeneratorWithPick(pick PickFunc) *Generator {
	return &Generator{pick: pick}
}

// Generate walks the working dates in order and emits one entry per
// date. Staff per-run state is reset at the start and mutated as
// assignments are made; closure days always win over staffing, and a
// day with no eligible staff at all gets the UNASSIGNED sentinel.
func (g *Generator) Generate(dates []time.Time, staff []*models.StaffMember, closures models.DateSet) []models.Entry {
	for _, s := range staff {
		s.ResetRun()
	}

	entries := make([]models.Entry, 0, len(dates))
	lastAssigned := "" // name assigned on the previous processed working day

	for _, date := range dates {
		entry := models.Entry{
			Date: date.Format(models.DisplayDateFormat),
			Day:  date.Weekday().String(),
		}

		if closures.Contains(date) {
			entry.Shift = models.Shift{Status: models.ShiftClosed}
			entry.Notes = ClosureNote
			if names := holidayNames(date, staff); names != "" {
				entry.Notes += " | On Holiday: " + names
			}
			lastAssigned = ""
			entries = append(entries, entry)
			continue
		}

		weekday := calendar.MondayIndex(date.Weekday())

		// Staff available this weekday, not on holiday and not already
		// assigned on this date.
		var available []*models.StaffMember
		for _, s := range staff {
			if s.WorksOn(weekday) && !s.Holidays.Contains(date) && !s.AssignedDates.Contains(date) {
				available = append(available, s)
			}
		}
		available = avoidConsecutive(available, lastAssigned)

		if len(available) == 0 {
			// Fallback: allow back-to-back assignment if necessary.
			var backToBack []*models.StaffMember
			for _, s := range staff {
				if s.WorksOn(weekday) && !s.Holidays.Contains(date) {
					backToBack = append(backToBack, s)
				}
			}
			backToBack = avoidConsecutive(backToBack, lastAssigned)

			if len(backToBack) > 0 {
				selected := g.selectFewestShifts(backToBack)
				entry.Shift = models.Assigned(selected.Name)
				selected.AssignedDates.Add(date)
				selected.ShiftCount++
				lastAssigned = selected.Name
			} else {
				entry.Shift = models.Shift{Status: models.ShiftUnassigned}
				lastAssigned = ""
			}
		} else {
			selected := g.selectFewestShifts(available)
			entry.Shift = models.Assigned(selected.Name)
			selected.AssignedDates.Add(date)
			selected.ShiftCount++
			lastAssigned = selected.Name
		}

		if names := holidayNames(date, staff); names != "" {
			if entry.Notes != "" {
				entry.Notes += " | On Holiday: " + names
			} else {
				entry.Notes = "On Holiday: " + names
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// avoidConsecutive drops the previous day's assignee from the pool,
// but only when that leaves someone to choose from. The preference is
// advisory: it never starves a day.
func avoidConsecutive(pool []*models.StaffMember, lastAssigned string) []*models.StaffMember {
	if lastAssigned == "" {
		return pool
	}
	var filtered []*models.StaffMember
	for _, s := range pool {
		if s.Name != lastAssigned {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return pool
	}
	return filtered
}

// selectFewestShifts restricts the pool to candidates with the minimum
// shift count so far and applies the tie-break over the rest.
func (g *Generator) selectFewestShifts(pool []*models.StaffMember) *models.StaffMember {
	minShifts := pool[0].ShiftCount
	for _, s := range pool[1:] {
		if s.ShiftCount < minShifts {
			minShifts = s.ShiftCount
		}
	}

	var candidates []*models.StaffMember
	for _, s := range pool {
		if s.ShiftCount == minShifts {
			candidates = append(candidates, s)
		}
	}
	return g.pick(candidates)
}

// holidayNames returns a comma-joined list of everyone on holiday on
// the given date, regardless of whether they were candidates that day.
func holidayNames(date time.Time, staff []*models.StaffMember) string {
	var names []string
	for _, s := range staff {
		if s.Holidays.Contains(date) {
			names = append(names, s.Name)
		}
	}
	return strings.Join(names, ", ")
}

// Summarize reports each staff member's final shift count for the run,
// in roster order.
func Summarize(staff []*models.StaffMember) []models.StaffSummary {
	summary := make([]models.StaffSummary, 0, len(staff))
	for _, s := range staff {
		summary = append(summary, models.StaffSummary{Name: s.Name, ShiftCount: s.ShiftCount})
	}
	return summary
}
