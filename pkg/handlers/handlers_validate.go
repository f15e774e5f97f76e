package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oharris/rota-api-go/pkg/models"
)

// ValidateInput checks a rota request for structural problems without
// generating anything
func (h *Handler) ValidateInput(c *gin.Context) {
	var req models.RotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if req.Month < 1 || req.Month > 12 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "month must be between 1 and 12",
		})
		return
	}

	// Check for duplicate names and office-day range
	names := make(map[string]bool)
	for _, s := range req.Staff {
		if s.Name == "" {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "staff member with empty name"})
			return
		}
		if names[s.Name] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate staff name: " + s.Name})
			return
		}
		names[s.Name] = true

		for _, d := range s.OfficeDays {
			if d < 0 || d > 4 {
				c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Office day out of range 0-4 for " + s.Name})
				return
			}
		}

		for _, holiday := range s.Holidays {
			if _, err := time.Parse(models.DisplayDateFormat, holiday); err != nil {
				c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Invalid holiday date for " + s.Name + ": " + holiday})
				return
			}
		}
	}

	for _, closure := range req.ClosureDays {
		if _, err := time.Parse(models.DisplayDateFormat, closure); err != nil {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Invalid closure date: " + closure})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"staff_count":   len(req.Staff),
			"closure_count": len(req.ClosureDays),
		},
	})
}
