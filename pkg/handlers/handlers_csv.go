package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oharris/rota-api-go/pkg/models"
	"github.com/oharris/rota-api-go/pkg/rota"
)

// GenerateRotaCSV handles CSV file uploads for rota generation.
// The staff file carries name,office_days,holidays columns with
// |-separated lists; year, month and closure_days come as form fields.
func (h *Handler) GenerateRotaCSV(c *gin.Context) {
	staffFile, _ := c.FormFile("staff_file")
	if staffFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff_file is required"})
		return
	}

	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year form field is required"})
		return
	}
	month, err := strconv.Atoi(c.PostForm("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month form field must be between 1 and 12"})
		return
	}

	// Parse staff
	sFile, err := staffFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open staff file"})
		return
	}
	defer sFile.Close()
	sReader := csv.NewReader(sFile)
	sHeader, err := sReader.Read()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read staff header"})
		return
	}
	sCols := make(map[string]int)
	for i, col := range sHeader {
		sCols[col] = i
	}

	var staff []models.StaffInput
	for {
		record, err := sReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		var officeDays []int
		for _, part := range strings.Split(record[sCols["office_days"]], "|") {
			if part == "" {
				continue
			}
			d, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid office day in staff file: " + part})
				return
			}
			officeDays = append(officeDays, d)
		}

		var holidays []string
		if idx, ok := sCols["holidays"]; ok && record[idx] != "" {
			holidays = strings.Split(record[idx], "|")
		}

		staff = append(staff, models.StaffInput{
			Name:       record[sCols["name"]],
			OfficeDays: officeDays,
			Holidays:   holidays,
		})
	}

	var closureDays []string
	if raw := c.PostForm("closure_days"); raw != "" {
		closureDays = strings.Split(raw, "|")
	}

	req := models.RotaRequest{Year: year, Month: month, Staff: staff, ClosureDays: closureDays}
	run, err := h.runRota(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(run.entries), len(run.staff))

	// Export CSV
	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"date", "day", "shift", "notes"})
	for _, entry := range run.entries {
		writer.Write([]string{entry.Date, entry.Day, entry.Shift.Display(), entry.Notes})
	}
	writer.Write([]string{})
	writer.Write([]string{"name", "shift_count"})
	for _, s := range rota.Summarize(run.staff) {
		writer.Write([]string{s.Name, strconv.Itoa(s.ShiftCount)})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{
		"csv":      outCSV.String(),
		"warnings": run.warnings,
	})
}
