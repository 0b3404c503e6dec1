package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitdesk/internal/permissions"
)

type roleView struct {
	Role        permissions.Role                       `json:"role"`
	Department  string                                 `json:"department"`
	Permissions []permissions.Permission               `json:"permissions"`
	DataAccess  map[string]permissions.DataAccessLevel `json:"data_access"`
}

// ListRoles describes every built-in role. Roles are fixed; they cannot be created at runtime.
func ListRoles() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := make([]roleView, 0, len(permissions.AllRoles))
		for _, r := range permissions.AllRoles {
			access := make(map[string]permissions.DataAccessLevel, len(permissions.ResourceTypes))
			for _, rt := range permissions.ResourceTypes {
				access[rt] = permissions.GetDataAccessLevel(r, rt)
			}
			roles = append(roles, roleView{
				Role:        r,
				Department:  r.Department(),
				Permissions: permissions.PermissionsFor(r),
				DataAccess:  access,
			})
		}
		c.JSON(http.StatusOK, gin.H{"roles": roles})
	}
}
