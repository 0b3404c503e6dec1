package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitdesk/internal/auth"
	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
)

// LoginHandler authenticates a staff member and returns a JWT
func LoginHandler(db *gorm.DB, jwtSecret string, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var staff models.Staff
		email := strings.TrimSpace(strings.ToLower(input.Email))
		if err := db.WithContext(c.Request.Context()).Where("email = ?", email).First(&staff).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		if !auth.CheckPassword(staff.PasswordHash, input.Password) {
			log.Info("login failed", zap.String("staff_id", staff.ID))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if staff.Status != models.StaffActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "account suspended"})
			return
		}

		tokenString, err := auth.IssueToken(jwtSecret, staff, ttl)
		if err != nil {
			log.Error("sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
			return
		}

		// Browser clients send the cookie automatically; API clients use the token field.
		c.SetCookie("token", tokenString, int(ttl.Seconds()), "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"token": tokenString,
			"user": gin.H{
				"id":         staff.ID,
				"email":      staff.Email,
				"name":       staff.Name,
				"role":       staff.Role,
				"position":   staff.Position,
				"department": staff.Department,
			},
		})
	}
}

// LogoutHandler clears the session cookie.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// MeHandler describes what the current staff member may do, for building the console UI.
func MeHandler(chk rbac.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, chk)
		if !ok {
			return
		}
		a := s.Actor()

		access := make(map[string]permissions.DataAccessLevel, len(permissions.ResourceTypes))
		for _, rt := range permissions.ResourceTypes {
			access[rt] = s.AccessLevel(rt)
		}

		c.JSON(http.StatusOK, gin.H{
			"actor":       a,
			"department":  a.Role.Department(),
			"permissions": permissions.PermissionsFor(a.Role),
			"data_access": access,
			"elevated": gin.H{
				"team_lead": s.Elevated(permissions.ElevationTeamLead),
				"manager":   s.Elevated(permissions.ElevationManager),
				"admin":     s.Elevated(permissions.ElevationAdmin),
			},
			"tasks": gin.H{
				"create":   permissions.CanCreateTask(a.Role),
				"assign":   permissions.CanAssignTask(a.Role, a.Position),
				"view_all": permissions.CanViewAllTasks(a.Role),
			},
			"sales":            viewScopes(a.Role, permissions.CanViewSales),
			"reports":          viewScopes(a.Role, permissions.CanViewReports),
			"manage_users":     permissions.CanManageUsers(a.Role, a.Position),
			"manage_members":   permissions.CanManageMembers(a.Role),
			"manage_schedules": permissions.CanManageSchedules(a.Role),
		})
	}
}

func viewScopes(role permissions.Role, can func(permissions.Role, permissions.ViewScope) bool) gin.H {
	return gin.H{
		"all":        can(role, permissions.ScopeAll),
		"department": can(role, permissions.ScopeDepartment),
		"own":        can(role, permissions.ScopeOwn),
	}
}
