package roster

import (
	"testing"
	"time"

	"github.com/oharris/rota-api-go/pkg/models"
)

func TestOfficeDaysRoundTrip(t *testing.T) {
	encoded := EncodeOfficeDays([]int{4, 0, 2})
	if encoded != "0,2,4" {
		t.Errorf("Expected canonical encoding 0,2,4, got %q", encoded)
	}

	days, err := DecodeOfficeDays(encoded)
	if err != nil {
		t.Fatalf("Unexpected decode error: %v", err)
	}
	if len(days) != 3 || days[0] != 0 || days[1] != 2 || days[2] != 4 {
		t.Errorf("Expected [0 2 4], got %v", days)
	}
}

func TestDecodeOfficeDays_Invalid(t *testing.T) {
	if _, err := DecodeOfficeDays("0,x"); err == nil {
		t.Error("Expected error for non-numeric office day")
	}
	if _, err := DecodeOfficeDays("0,7"); err == nil {
		t.Error("Expected error for out-of-range office day")
	}
}

func TestBuild(t *testing.T) {
	staff, err := Build([]models.StaffInput{
		{Name: "John", OfficeDays: []int{1, 2, 4}, Holidays: []string{"04/03/2025"}},
		{Name: "Jane", OfficeDays: []int{0, 1, 2}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("Expected 2 staff members, got %d", len(staff))
	}

	holiday := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	if !staff[0].Holidays.Contains(holiday) {
		t.Error("Expected John's holiday set to contain 04/03/2025")
	}
	if staff[0].ShiftCount != 0 || len(staff[0].AssignedDates) != 0 {
		t.Error("Expected fresh run state")
	}
}

func TestBuild_InvalidHoliday(t *testing.T) {
	_, err := Build([]models.StaffInput{
		{Name: "John", OfficeDays: []int{1}, Holidays: []string{"2025-03-04"}},
	})
	if err == nil {
		t.Error("Expected error for ISO-formatted holiday date")
	}
}

func TestParseClosures(t *testing.T) {
	set, err := ParseClosures([]string{"05/03/2025", "06/03/2025"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !set.Contains(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected closure set to contain 05/03/2025")
	}

	if _, err := ParseClosures([]string{"not-a-date"}); err == nil {
		t.Error("Expected error for malformed closure date")
	}
}

func TestDefaults(t *testing.T) {
	defaults := Defaults()
	if len(defaults) != 5 {
		t.Fatalf("Expected 5 default staff, got %d", len(defaults))
	}
	for _, s := range defaults {
		if len(s.OfficeDays) == 0 {
			t.Errorf("%s has no office days", s.Name)
		}
		for _, d := range s.OfficeDays {
			if d < 0 || d > 4 {
				t.Errorf("%s has office day %d out of range", s.Name, d)
			}
		}
	}
}
