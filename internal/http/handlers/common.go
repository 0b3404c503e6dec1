package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitdesk/internal/auth"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/store"
)

// session binds the authenticated actor to the checker. It writes a 401 and
// returns false when the JWT middleware did not run.
func session(c *gin.Context, chk rbac.Checker) (rbac.Session, bool) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return rbac.Session{}, false
	}
	return chk.For(actor, auth.RequestIDFrom(c)), true
}

func forbidden(c *gin.Context, res permissions.CheckResult) {
	c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "reason": res.Reason})
}

// storeError maps repository errors to responses.
func storeError(c *gin.Context, log *zap.Logger, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.Error("store operation failed", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// visible reports whether the session's data scope includes item.
func visible[T permissions.Governed](s rbac.Session, resourceType string, item T) bool {
	return len(rbac.Filter(s, resourceType, []T{item})) == 1
}
