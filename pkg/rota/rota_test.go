package rota

import (
	"testing"
	"time"

	"github.com/oharris/rota-api-go/pkg/calendar"
	"github.com/oharris/rota-api-go/pkg/models"
)

func date(day int) time.Time {
	// March 2025: the 3rd is a Monday
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func newStaff(name string, officeDays ...int) *models.StaffMember {
	s := &models.StaffMember{
		Name:       name,
		OfficeDays: officeDays,
		Holidays:   make(models.DateSet),
	}
	s.ResetRun()
	return s
}

func TestGenerate_SingleStaffWithClosure(t *testing.T) {
	// Mon 3rd - Fri 7th, closure on Wed 5th
	dates := []time.Time{date(3), date(4), date(5), date(6), date(7)}
	staff := []*models.StaffMember{newStaff("Jane", 0, 1, 2, 3, 4)}
	closures := models.NewDateSet(date(5))

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, closures)

	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}

	assigned := 0
	for _, e := range entries {
		if e.Shift.Status == models.ShiftAssigned {
			if e.Shift.StaffName != "Jane" {
				t.Errorf("Expected Jane assigned, got %q", e.Shift.StaffName)
			}
			assigned++
		}
	}
	if assigned != 4 {
		t.Errorf("Expected 4 assigned entries, got %d", assigned)
	}

	closed := entries[2]
	if closed.Shift.Status != models.ShiftClosed {
		t.Errorf("Expected closure entry on 05/03/2025, got status %q", closed.Shift.Status)
	}
	if closed.Shift.Display() != "CLOSED" {
		t.Errorf("Expected CLOSED display, got %q", closed.Shift.Display())
	}
	if closed.Notes != ClosureNote {
		t.Errorf("Expected notes %q, got %q", ClosureNote, closed.Notes)
	}

	if staff[0].ShiftCount != 4 {
		t.Errorf("Expected shift count 4, got %d", staff[0].ShiftCount)
	}
}

func TestGenerate_Completeness(t *testing.T) {
	dates := calendar.WorkingDatesInMonth(2025, time.March)
	staff := []*models.StaffMember{
		newStaff("John", 1, 2, 4),
		newStaff("Jane", 0, 1, 2),
		newStaff("Claire", 2, 3, 4),
	}

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, make(models.DateSet))

	if len(entries) != len(dates) {
		t.Fatalf("Expected one entry per working day (%d), got %d", len(dates), len(entries))
	}
	for i, e := range entries {
		want := dates[i].Format(models.DisplayDateFormat)
		if e.Date != want {
			t.Errorf("Entry %d: expected date %s, got %s", i, want, e.Date)
		}
		if e.Day != dates[i].Weekday().String() {
			t.Errorf("Entry %d: expected day %s, got %s", i, dates[i].Weekday(), e.Day)
		}
	}
}

func TestGenerate_LoadConservation(t *testing.T) {
	dates := calendar.WorkingDatesInMonth(2025, time.March)
	staff := []*models.StaffMember{
		newStaff("John", 1, 2, 4),
		newStaff("Jane", 0, 1, 2),
		newStaff("Sarmad", 0, 1, 3),
	}
	closures := models.NewDateSet(date(10), date(11))

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, closures)

	assigned := 0
	for _, e := range entries {
		if e.Shift.Status == models.ShiftAssigned {
			assigned++
		}
	}

	total := 0
	for _, s := range staff {
		total += s.ShiftCount
		if len(s.AssignedDates) != s.ShiftCount {
			t.Errorf("%s: assigned dates (%d) out of sync with shift count (%d)",
				s.Name, len(s.AssignedDates), s.ShiftCount)
		}
	}
	if total != assigned {
		t.Errorf("Expected shift counts to sum to %d assigned entries, got %d", assigned, total)
	}
}

func TestGenerate_ClosurePrecedence(t *testing.T) {
	// Staff are available, but the university is closed
	dates := []time.Time{date(3)}
	staff := []*models.StaffMember{newStaff("Jane", 0, 1, 2, 3, 4)}
	closures := models.NewDateSet(date(3))

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, closures)

	if entries[0].Shift.Status != models.ShiftClosed {
		t.Errorf("Expected CLOSED on closure day, got %q", entries[0].Shift.Status)
	}
	if staff[0].ShiftCount != 0 {
		t.Errorf("Expected no staff state mutation on closure day, got shift count %d", staff[0].ShiftCount)
	}
}

func TestGenerate_HolidayExclusion(t *testing.T) {
	dates := calendar.WorkingDatesInMonth(2025, time.March)
	john := newStaff("John", 0, 1, 2, 3, 4)
	jane := newStaff("Jane", 0, 1, 2, 3, 4)
	john.Holidays.Add(date(4))
	john.Holidays.Add(date(5))
	staff := []*models.StaffMember{john, jane}

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, make(models.DateSet))

	for _, e := range entries {
		if e.Shift.StaffName == "John" && (e.Date == "04/03/2025" || e.Date == "05/03/2025") {
			t.Errorf("John assigned on his holiday %s", e.Date)
		}
	}

	if warnings := Validate(entries, staff); len(warnings) != 0 {
		t.Errorf("Expected clean validation, got warnings: %v", warnings)
	}
}

func TestGenerate_UnassignedWhenOnlyCandidateOnHoliday(t *testing.T) {
	// Dana only works Mondays and is on holiday on the only Monday
	dana := newStaff("Dana", 0)
	dana.Holidays.Add(date(3))
	staff := []*models.StaffMember{dana}

	entries := NewGeneratorWithPick(PickFirst).Generate([]time.Time{date(3)}, staff, make(models.DateSet))

	if entries[0].Shift.Status != models.ShiftUnassigned {
		t.Errorf("Expected UNASSIGNED, got %q", entries[0].Shift.Status)
	}
	if entries[0].Notes != "On Holiday: Dana" {
		t.Errorf("Expected holiday note, got %q", entries[0].Notes)
	}
}

func TestGenerate_ConsecutiveAvoidance(t *testing.T) {
	dates := []time.Time{date(3), date(4), date(5), date(6), date(7)}
	staff := []*models.StaffMember{
		newStaff("John", 0, 1, 2, 3, 4),
		newStaff("Jane", 0, 1, 2, 3, 4),
	}

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, make(models.DateSet))

	for i := 1; i < len(entries); i++ {
		if entries[i].Shift.StaffName == entries[i-1].Shift.StaffName {
			t.Errorf("Same person on consecutive days %s and %s while an alternative existed",
				entries[i-1].Date, entries[i].Date)
		}
	}
}

func TestGenerate_FallbackAllowsBackToBack(t *testing.T) {
	// One person covers the whole week: back-to-back is unavoidable
	dates := []time.Time{date(3), date(4)}
	staff := []*models.StaffMember{newStaff("Cheryl", 0, 1, 2, 3, 4)}

	entries := NewGeneratorWithPick(PickFirst).Generate(dates, staff, make(models.DateSet))

	for _, e := range entries {
		if e.Shift.StaffName != "Cheryl" {
			t.Errorf("Expected Cheryl on %s, got %q", e.Date, e.Shift.Display())
		}
	}
	if staff[0].ShiftCount != 2 {
		t.Errorf("Expected shift count 2, got %d", staff[0].ShiftCount)
	}
}

func TestGenerate_FairnessSpread(t *testing.T) {
	dates := calendar.WorkingDatesInMonth(2025, time.March)
	staff := []*models.StaffMember{
		newStaff("John", 0, 1, 2, 3, 4),
		newStaff("Jane", 0, 1, 2, 3, 4),
		newStaff("Claire", 0, 1, 2, 3, 4),
	}

	NewGeneratorWithPick(PickFirst).Generate(dates, staff, make(models.DateSet))

	min, max := staff[0].ShiftCount, staff[0].ShiftCount
	for _, s := range staff[1:] {
		if s.ShiftCount < min {
			min = s.ShiftCount
		}
		if s.ShiftCount > max {
			max = s.ShiftCount
		}
	}
	if max-min > 1 {
		t.Errorf("Expected shift counts to stay within 1 of each other, got min %d max %d", min, max)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	dates := calendar.WorkingDatesInMonth(2025, time.March)
	closures := models.NewDateSet(date(17))

	build := func() []*models.StaffMember {
		john := newStaff("John", 1, 2, 4)
		john.Holidays.Add(date(12))
		return []*models.StaffMember{
			john,
			newStaff("Jane", 0, 1, 2),
			newStaff("Sarmad", 0, 1, 3),
		}
	}

	first := NewGeneratorWithPick(PickFirst).Generate(dates, build(), closures)
	second := NewGeneratorWithPick(PickFirst).Generate(dates, build(), closures)

	if len(first) != len(second) {
		t.Fatalf("Run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry %d differs between identical runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerate_ClosureNotesIncludeHolidays(t *testing.T) {
	john := newStaff("John", 0, 1, 2, 3, 4)
	john.Holidays.Add(date(3))
	staff := []*models.StaffMember{john, newStaff("Jane", 0, 1, 2, 3, 4)}
	closures := models.NewDateSet(date(3))

	entries := NewGeneratorWithPick(PickFirst).Generate([]time.Time{date(3)}, staff, closures)

	want := "University Closure | On Holiday: John"
	if entries[0].Notes != want {
		t.Errorf("Expected notes %q, got %q", want, entries[0].Notes)
	}
}

func TestGenerate_HolidayNotesOnAssignedDays(t *testing.T) {
	// Holiday notes are informational: they list everyone on holiday,
	// not just candidates
	john := newStaff("John", 0)
	john.Holidays.Add(date(4)) // a Tuesday John never works anyway
	staff := []*models.StaffMember{john, newStaff("Jane", 0, 1, 2, 3, 4)}

	entries := NewGeneratorWithPick(PickFirst).Generate([]time.Time{date(4)}, staff, make(models.DateSet))

	if entries[0].Shift.StaffName != "Jane" {
		t.Fatalf("Expected Jane assigned, got %q", entries[0].Shift.Display())
	}
	if entries[0].Notes != "On Holiday: John" {
		t.Errorf("Expected holiday note for John, got %q", entries[0].Notes)
	}
}

func TestSummarize(t *testing.T) {
	dates := []time.Time{date(3), date(4)}
	staff := []*models.StaffMember{
		newStaff("John", 0, 1, 2, 3, 4),
		newStaff("Jane", 0, 1, 2, 3, 4),
	}

	NewGeneratorWithPick(PickFirst).Generate(dates, staff, make(models.DateSet))
	summary := Summarize(staff)

	if len(summary) != 2 {
		t.Fatalf("Expected 2 summary rows, got %d", len(summary))
	}
	if summary[0].Name != "John" || summary[1].Name != "Jane" {
		t.Errorf("Expected roster order preserved, got %v", summary)
	}
	if summary[0].ShiftCount+summary[1].ShiftCount != 2 {
		t.Errorf("Expected 2 shifts total, got %d", summary[0].ShiftCount+summary[1].ShiftCount)
	}
}
