package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oharris/rota-api-go/pkg/database"
	"github.com/oharris/rota-api-go/pkg/roster"
)

type staffRequest struct {
	Name       string `json:"name"`
	OfficeDays []int  `json:"office_days"`
}

func (r *staffRequest) validate() string {
	if r.Name == "" {
		return "name is required"
	}
	if len(r.OfficeDays) == 0 {
		return "at least one office day is required"
	}
	for _, d := range r.OfficeDays {
		if d < 0 || d > 4 {
			return "office days must be between 0 (Monday) and 4 (Friday)"
		}
	}
	return ""
}

// ListStaff returns the persisted roster
func (h *Handler) ListStaff(c *gin.Context) {
	var records []database.StaffRecord
	if err := h.DB.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": records})
}

// CreateStaff adds a staff member to the roster
func (h *Handler) CreateStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	record := database.StaffRecord{
		Name:       req.Name,
		OfficeDays: roster.EncodeOfficeDays(req.OfficeDays),
	}
	if err := h.DB.Create(&record).Error; err != nil {
		h.Logger.Error("failed to create staff record", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Could not create staff member (name must be unique)"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": record})
}

// UpdateStaff updates a roster member's name or office days
func (h *Handler) UpdateStaff(c *gin.Context) {
	id := c.Param("id")

	var record database.StaffRecord
	if err := h.DB.First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	record.Name = req.Name
	record.OfficeDays = roster.EncodeOfficeDays(req.OfficeDays)
	if err := h.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": record})
}

// DeleteStaff removes a staff member from the roster
func (h *Handler) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.StaffRecord{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member removed"})
}
