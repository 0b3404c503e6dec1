package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
)

// ListAudit pages through permission decisions, newest first.
// Query: limit (1..100), after_id cursor, q substring, result=allowed|denied.
func ListAudit(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		var afterID int64
		if cursorStr := c.Query("after_id"); cursorStr != "" {
			if parsed, err := strconv.ParseInt(cursorStr, 10, 64); err == nil && parsed > 0 {
				afterID = parsed
			}
		}

		search := strings.TrimSpace(c.Query("q"))

		query := db.WithContext(c.Request.Context()).Model(&models.AuditLog{}).Order("id DESC")
		if afterID > 0 {
			query = query.Where("id < ?", afterID)
		}
		if search != "" {
			like := "%" + search + "%"
			query = query.Where("(actor_id LIKE ? OR action LIKE ? OR resource LIKE ? OR reason LIKE ?)",
				like, like, like, like)
		}
		switch r := permissions.AuditResult(c.Query("result")); r {
		case permissions.AuditAllowed, permissions.AuditDenied:
			query = query.Where("result = ?", string(r))
		case "":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "result must be allowed or denied"})
			return
		}

		var logs []models.AuditLog
		if err := query.Limit(limit + 1).Find(&logs).Error; err != nil {
			log.Error("list audit", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		var nextCursor *int64
		if len(logs) > limit {
			next := logs[limit-1].ID
			logs = logs[:limit]
			nextCursor = &next
		}

		c.JSON(http.StatusOK, gin.H{
			"logs":        logs,
			"next_cursor": nextCursor,
		})
	}
}
