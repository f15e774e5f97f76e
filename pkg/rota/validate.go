package rota

import (
	"fmt"
	"time"

	"github.com/oharris/rota-api-go/pkg/models"
)

// Validate cross-checks a generated rota against staff holiday sets.
// It returns a warning for every assignment that lands on the
// assignee's holiday and for every entry whose date fails to parse.
// The schedule itself is never mutated; an empty result means the rota
// is clean.
func Validate(entries []models.Entry, staff []*models.StaffMember) []string {
	warnings := make([]string, 0)

	for _, entry := range entries {
		date, err := time.Parse(models.DisplayDateFormat, entry.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid date format in %s", entry.Date))
			continue
		}

		if entry.Shift.Status != models.ShiftAssigned {
			continue
		}

		for _, s := range staff {
			if entry.Shift.StaffName == s.Name && s.Holidays.Contains(date) {
				warnings = append(warnings, fmt.Sprintf("%s assigned on holiday: %s", s.Name, entry.Date))
			}
		}
	}

	return warnings
}
