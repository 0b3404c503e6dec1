package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/store"
)

// RecordPtr is the pointer form of a governed model.
type RecordPtr[T any] interface {
	*T
	models.Record
}

// Resource serves list/get/create/update/delete for one governed table.
type Resource[T permissions.Governed, PT RecordPtr[T]] struct {
	Name         string // response key and audit resource prefix, e.g. "members"
	ResourceType string // data access table key
	View         []permissions.Permission
	CreatePerm   permissions.Permission
	UpdatePerm   permissions.Permission
	DeletePerm   permissions.Permission
	ReadOnly     []string // columns the generic update never writes

	// Guard, when set, runs on a stamped record before it is created.
	Guard func(s rbac.Session, rec PT) permissions.CheckResult

	Repo    *store.Repository[T]
	Checker rbac.Checker
	Log     *zap.Logger
}

// List returns the rows inside the actor's data scope.
func (h *Resource[T, PT]) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		items, err := h.Repo.List(c.Request.Context())
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{h.Name: rbac.Filter(s, h.ResourceType, items)})
	}
}

func (h *Resource[T, PT]) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		item, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		if !visible(s, h.ResourceType, *item) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

func (h *Resource[T, PT]) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		rec := PT(new(T))
		if err := c.ShouldBindJSON(rec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rec.ClearIdentity()

		if res := s.Check(h.CreatePerm, h.Name); !res.Allowed {
			forbidden(c, res)
			return
		}
		rec.Stamp(s.Actor())
		if res := s.CanModify(string(h.CreatePerm), h.ResourceType, rec.AccessMetadata()); !res.Allowed {
			forbidden(c, res)
			return
		}
		if h.Guard != nil {
			if res := h.Guard(s, rec); !res.Allowed {
				forbidden(c, res)
				return
			}
		}

		if err := h.Repo.Create(c.Request.Context(), (*T)(rec)); err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": rec})
	}
}

// Update applies a partial JSON body. Only the keys present in the body are
// written, so false, 0 and "" are stored as sent. Both the current row and
// the row as it would look afterwards must stay inside the actor's scope.
func (h *Resource[T, PT]) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		id := c.Param("id")
		if res := s.Check(h.UpdatePerm, h.Name+"/"+id); !res.Allowed {
			forbidden(c, res)
			return
		}

		var fields map[string]json.RawMessage
		if err := json.NewDecoder(c.Request.Body).Decode(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		for _, k := range append(append([]string{}, store.Immutable...), h.ReadOnly...) {
			delete(fields, k)
		}
		body, _ := json.Marshal(fields)
		patch := PT(new(T))
		if err := json.Unmarshal(body, patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		existing, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		current := (*existing).AccessMetadata()
		if res := s.CanModify(string(h.UpdatePerm), h.ResourceType, current); !res.Allowed {
			forbidden(c, res)
			return
		}
		merged := *existing
		if err := json.Unmarshal(body, &merged); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if next := merged.AccessMetadata(); !sameScope(current, next) {
			if res := s.CanModify(string(h.UpdatePerm), h.ResourceType, next); !res.Allowed {
				forbidden(c, res)
				return
			}
		}

		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		if err := h.Repo.Patch(c.Request.Context(), id, (*T)(patch), keys, h.ReadOnly...); err != nil {
			storeError(c, h.Log, err)
			return
		}
		updated, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": updated})
	}
}

func (h *Resource[T, PT]) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		id := c.Param("id")
		if res := s.Check(h.DeletePerm, h.Name+"/"+id); !res.Allowed {
			forbidden(c, res)
			return
		}
		existing, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		if res := s.CanModify(string(h.DeletePerm), h.ResourceType, (*existing).AccessMetadata()); !res.Allowed {
			forbidden(c, res)
			return
		}
		if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}

func sameScope(a, b permissions.AccessMetadata) bool {
	if a.Department != b.Department || a.OwnerID != b.OwnerID || len(a.AssignedIDs) != len(b.AssignedIDs) {
		return false
	}
	for i := range a.AssignedIDs {
		if a.AssignedIDs[i] != b.AssignedIDs[i] {
			return false
		}
	}
	return true
}
