package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/store"
)

// ListRoleAssignments groups the visible staff by role.
func ListRoleAssignments(repo *store.Repository[models.Staff], chk rbac.Checker, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, chk)
		if !ok {
			return
		}
		staff, err := repo.List(c.Request.Context())
		if err != nil {
			storeError(c, log, err)
			return
		}

		byRole := make(map[permissions.Role][]models.Staff, len(permissions.AllRoles))
		for _, r := range permissions.AllRoles {
			byRole[r] = []models.Staff{}
		}
		for _, st := range rbac.Filter(s, permissions.ResourceUsers, staff) {
			byRole[st.Role] = append(byRole[st.Role], st)
		}
		c.JSON(http.StatusOK, gin.H{"assignments": byRole})
	}
}
