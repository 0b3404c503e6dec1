package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fitdesk/internal/auth"
	"fitdesk/internal/models"
)

// ProfileHandler returns the stored account of the authenticated staff member.
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl, ok := auth.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var staff models.Staff
		if err := db.WithContext(c.Request.Context()).Where("id = ?", cl.UserID).First(&staff).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"profile": staff})
	}
}
