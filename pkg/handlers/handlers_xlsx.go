package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/oharris/rota-api-go/pkg/models"
	"github.com/oharris/rota-api-go/pkg/rota"
)

// GenerateRotaXLSX handles the same request as GenerateRota but
// responds with an Excel workbook: a Rota sheet plus a Shift Summary
// sheet, delivered as an attachment.
func (h *Handler) GenerateRotaXLSX(c *gin.Context) {
	var req models.RotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Month < 1 || req.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	run, err := h.runRota(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.RecordUsage(c, len(run.entries), len(run.staff))

	buf, err := buildWorkbook(run, rota.Summarize(run.staff))
	if err != nil {
		h.Logger.Error("failed to build workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate workbook"})
		return
	}

	filename := fmt.Sprintf("rota_%04d_%02d.xlsx", req.Year, req.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func buildWorkbook(run *rotaRun, summary []models.StaffSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const rotaSheet = "Rota"
	idx, err := f.NewSheet(rotaSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(rotaSheet, "A", "A", 12)
	f.SetColWidth(rotaSheet, "B", "B", 12)
	f.SetColWidth(rotaSheet, "C", "C", 14)
	f.SetColWidth(rotaSheet, "D", "D", 40)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, title := range []string{"Date", "Day", "Shift", "Notes"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(rotaSheet, cell, title)
		f.SetCellStyle(rotaSheet, cell, cell, headerStyle)
	}

	for i, entry := range run.entries {
		row := i + 2
		f.SetCellValue(rotaSheet, fmt.Sprintf("A%d", row), entry.Date)
		f.SetCellValue(rotaSheet, fmt.Sprintf("B%d", row), entry.Day)
		f.SetCellValue(rotaSheet, fmt.Sprintf("C%d", row), entry.Shift.Display())
		f.SetCellValue(rotaSheet, fmt.Sprintf("D%d", row), entry.Notes)
	}

	const summarySheet = "Shift Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	f.SetColWidth(summarySheet, "A", "A", 16)
	f.SetColWidth(summarySheet, "B", "B", 12)
	for i, title := range []string{"Name", "Shift Count"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, title)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}
	for i, s := range summary {
		row := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), s.Name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), s.ShiftCount)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
