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

var denyAssign = permissions.CheckResult{
	Allowed: false,
	Reason:  "업무 배정은 팀장 또는 매니저 직급 이상만 가능합니다",
}

// TaskGuard refuses to create tasks that are pre-assigned by someone who may not assign.
func TaskGuard(s rbac.Session, t *models.Task) permissions.CheckResult {
	a := s.Actor()
	if len(t.Assignees()) > 0 && !permissions.CanAssignTask(a.Role, a.Position) {
		return denyAssign
	}
	return permissions.CheckResult{Allowed: true}
}

// AssignTask replaces the assignee list of a task.
// Expects JSON: { "assigned_to": ["staff-id", ...] }
func AssignTask(repo *store.Repository[models.Task], chk rbac.Checker, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, chk)
		if !ok {
			return
		}
		var payload struct {
			AssignedTo []string `json:"assigned_to"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id := c.Param("id")
		if res := s.Check(permissions.TasksAssign, "tasks/"+id); !res.Allowed {
			forbidden(c, res)
			return
		}
		a := s.Actor()
		if !permissions.CanAssignTask(a.Role, a.Position) {
			forbidden(c, denyAssign)
			return
		}

		task, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, log, err)
			return
		}
		if res := s.CanModify(string(permissions.TasksAssign), permissions.ResourceTasks, task.AccessMetadata()); !res.Allowed {
			forbidden(c, res)
			return
		}

		task.SetAssignees(payload.AssignedTo)
		if err := repo.UpdateColumns(c.Request.Context(), id, map[string]any{"assigned_to": task.AssignedTo}); err != nil {
			storeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": task})
	}
}
