package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
)

// PermissionCatalog lists every known permission grouped by category.
func PermissionCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories":  permissions.Categories(),
			"permissions": permissions.CatalogByCategory(),
		})
	}
}

// CheckPermission answers GET /permissions/check?permission=members.create
// for the current actor. The decision is audited.
func CheckPermission(chk rbac.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, chk)
		if !ok {
			return
		}
		p, ok := permissions.ParsePermission(strings.TrimSpace(c.Query("permission")))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown permission"})
			return
		}
		res := s.Check(p, "permissions/check")
		c.JSON(http.StatusOK, gin.H{
			"permission":   p,
			"allowed":      res.Allowed,
			"reason":       res.Reason,
			"admin_only":   permissions.IsAdminOnly(p),
			"manager_only": permissions.IsManagerOnly(p),
		})
	}
}

// PageAccess answers GET /pages/access?path=/sales for the current actor.
func PageAccess(chk rbac.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, chk)
		if !ok {
			return
		}
		path := strings.TrimSpace(c.Query("path"))
		if path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
			return
		}
		required, _ := permissions.PageRequirements(path)
		c.JSON(http.StatusOK, gin.H{
			"path":     path,
			"allowed":  s.PageAccess(path),
			"requires": required,
		})
	}
}
