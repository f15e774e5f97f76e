package roster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/oharris/rota-api-go/pkg/database"
	"github.com/oharris/rota-api-go/pkg/models"
)

// Defaults is the seeded front-desk roster. Office days use the
// 0=Monday..4=Friday convention.
func Defaults() []models.StaffInput {
	return []models.StaffInput{
		{Name: "John", OfficeDays: []int{1, 2, 4}},   // Tue, Wed, Fri
		{Name: "Jane", OfficeDays: []int{0, 1, 2}},   // Mon, Tue, Wed
		{Name: "Cheryl", OfficeDays: []int{1, 2, 4}}, // Tue, Wed, Fri
		{Name: "Claire", OfficeDays: []int{2, 3, 4}}, // Wed, Thu, Fri
		{Name: "Sarmad", OfficeDays: []int{0, 1, 3}}, // Mon, Tue, Thu
	}
}

// EnsureDefaults seeds the staff table with the default roster when it
// is empty.
func EnsureDefaults(db *gorm.DB) error {
	var count int64
	db.Model(&database.StaffRecord{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, s := range Defaults() {
		rec := database.StaffRecord{
			Name:       s.Name,
			OfficeDays: EncodeOfficeDays(s.OfficeDays),
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

// Load reads the persisted roster as wire inputs, ordered by record ID
// so generation runs see a stable roster order.
func Load(db *gorm.DB) ([]models.StaffInput, error) {
	var records []database.StaffRecord
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}

	inputs := make([]models.StaffInput, 0, len(records))
	for _, rec := range records {
		days, err := DecodeOfficeDays(rec.OfficeDays)
		if err != nil {
			return nil, fmt.Errorf("staff %q: %w", rec.Name, err)
		}
		inputs = append(inputs, models.StaffInput{Name: rec.Name, OfficeDays: days})
	}
	return inputs, nil
}

// EncodeOfficeDays serializes weekday indices as a comma-joined string
// for storage.
func EncodeOfficeDays(days []int) string {
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)
	parts := make([]string, 0, len(sorted))
	for _, d := range sorted {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

// DecodeOfficeDays parses the stored comma-joined weekday indices.
func DecodeOfficeDays(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid office day %q", part)
		}
		if d < 0 || d > 4 {
			return nil, fmt.Errorf("office day %d out of range 0-4", d)
		}
		days = append(days, d)
	}
	return days, nil
}

// Build converts wire inputs into staff members with parsed holiday
// sets and fresh run state. Holiday dates must be DD/MM/YYYY.
func Build(inputs []models.StaffInput) ([]*models.StaffMember, error) {
	staff := make([]*models.StaffMember, 0, len(inputs))
	for _, in := range inputs {
		member := &models.StaffMember{
			Name:       in.Name,
			OfficeDays: in.OfficeDays,
			Holidays:   make(models.DateSet),
		}
		member.ResetRun()

		for _, h := range in.Holidays {
			date, err := time.Parse(models.DisplayDateFormat, h)
			if err != nil {
				return nil, fmt.Errorf("staff %q: invalid holiday date %q, want DD/MM/YYYY", in.Name, h)
			}
			member.Holidays.Add(date)
		}
		staff = append(staff, member)
	}
	return staff, nil
}

// ParseClosures converts DD/MM/YYYY closure strings into a date set.
func ParseClosures(dates []string) (models.DateSet, error) {
	set := make(models.DateSet, len(dates))
	for _, c := range dates {
		date, err := time.Parse(models.DisplayDateFormat, c)
		if err != nil {
			return nil, fmt.Errorf("invalid closure date %q, want DD/MM/YYYY", c)
		}
		set.Add(date)
	}
	return set, nil
}
