package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitdesk/internal/auth"
	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
	"fitdesk/internal/rbac"
	"fitdesk/internal/store"
)

// StaffHandler manages console accounts. Staff rows are governed as "users".
type StaffHandler struct {
	DB      *gorm.DB
	Repo    *store.Repository[models.Staff]
	Checker rbac.Checker
	Log     *zap.Logger
}

// List returns the staff inside the actor's data scope.
func (h *StaffHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		staff, err := h.Repo.List(c.Request.Context())
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff": rbac.Filter(s, permissions.ResourceUsers, staff)})
	}
}

// Create inserts a new staff account.
func (h *StaffHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		var in struct {
			Email      string `json:"email" binding:"required,email"`
			Name       string `json:"name" binding:"required"`
			Password   string `json:"password" binding:"required"`
			Phone      string `json:"phone"`
			Role       string `json:"role" binding:"required"`
			Position   string `json:"position"`
			Department string `json:"department"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if res := s.Check(permissions.UsersCreate, "staff"); !res.Allowed {
			forbidden(c, res)
			return
		}

		in.Email = strings.TrimSpace(strings.ToLower(in.Email))
		in.Name = strings.TrimSpace(in.Name)
		role, ok := permissions.ParseRole(in.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
		position := permissions.Position(strings.TrimSpace(in.Position))
		if position != "" {
			if _, ok := permissions.LookupPosition(position); !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown position"})
				return
			}
		}
		if len(in.Password) < auth.MinPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
			return
		}

		var existing int64
		if err := h.DB.WithContext(c.Request.Context()).Model(&models.Staff{}).
			Where("email = ?", in.Email).Count(&existing).Error; err != nil {
			storeError(c, h.Log, err)
			return
		}
		if existing > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		staff := models.Staff{
			Email:        in.Email,
			Name:         in.Name,
			Phone:        in.Phone,
			PasswordHash: hash,
			Role:         role,
			Position:     position,
			Department:   strings.TrimSpace(in.Department),
			Status:       models.StaffActive,
		}
		staff.Stamp(s.Actor())
		if err := h.Repo.Create(c.Request.Context(), &staff); err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"staff": staff})
	}
}

// Update changes profile fields. Role changes are admin only.
func (h *StaffHandler) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		var in struct {
			Name       *string `json:"name"`
			Phone      *string `json:"phone"`
			Role       *string `json:"role"`
			Position   *string `json:"position"`
			Department *string `json:"department"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id := c.Param("id")
		if res := s.Check(permissions.UsersUpdate, "staff/"+id); !res.Allowed {
			forbidden(c, res)
			return
		}
		target, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		if res := s.CanModify(string(permissions.UsersUpdate), permissions.ResourceUsers, target.AccessMetadata()); !res.Allowed {
			forbidden(c, res)
			return
		}

		cols := map[string]any{}
		if in.Name != nil {
			cols["name"] = strings.TrimSpace(*in.Name)
		}
		if in.Phone != nil {
			cols["phone"] = *in.Phone
		}
		if in.Position != nil {
			p := permissions.Position(strings.TrimSpace(*in.Position))
			if _, ok := permissions.LookupPosition(p); p != "" && !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown position"})
				return
			}
			cols["position"] = p
		}
		if in.Role != nil || in.Department != nil {
			if !s.Elevated(permissions.ElevationAdmin) {
				forbidden(c, permissions.CheckResult{Reason: "역할과 부서 변경은 관리자만 가능합니다"})
				return
			}
			if in.Role != nil {
				role, ok := permissions.ParseRole(*in.Role)
				if !ok {
					c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
					return
				}
				cols["role"] = role
			}
			if in.Department != nil {
				cols["department"] = strings.TrimSpace(*in.Department)
			}
		}
		if len(cols) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		if err := h.Repo.UpdateColumns(c.Request.Context(), id, cols); err != nil {
			storeError(c, h.Log, err)
			return
		}
		updated, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"staff": updated})
	}
}

// SetStatus returns a handler that activates or suspends an account.
func (h *StaffHandler) SetStatus(status models.StaffStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		id := c.Param("id")
		if id == s.Actor().ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot change your own status"})
			return
		}
		if res := s.Check(permissions.UsersUpdate, "staff/"+id); !res.Allowed {
			forbidden(c, res)
			return
		}
		target, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		if res := s.CanModify(string(permissions.UsersUpdate), permissions.ResourceUsers, target.AccessMetadata()); !res.Allowed {
			forbidden(c, res)
			return
		}
		if err := h.Repo.UpdateColumns(c.Request.Context(), id, map[string]any{"status": status}); err != nil {
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": status})
	}
}

// ChangePassword lets a staff member change their own password, or a user
// manager reset someone else's.
func (h *StaffHandler) ChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		var in struct {
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(in.Password) < auth.MinPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
			return
		}

		id := c.Param("id")
		self := id == s.Actor().ID
		if !self {
			if res := s.Check(permissions.UsersUpdate, "staff/"+id+"/password"); !res.Allowed {
				forbidden(c, res)
				return
			}
		}
		target, err := h.Repo.Get(c.Request.Context(), id)
		if err != nil {
			storeError(c, h.Log, err)
			return
		}
		if !self {
			if res := s.CanModify(string(permissions.UsersUpdate), permissions.ResourceUsers, target.AccessMetadata()); !res.Allowed {
				forbidden(c, res)
				return
			}
		}

		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		if err := h.Repo.UpdateColumns(c.Request.Context(), id, map[string]any{"password_hash": hash}); err != nil {
			storeError(c, h.Log, err)
			return
		}
		s.Record("staff.password", "staff/"+id)
		c.JSON(http.StatusOK, gin.H{"message": "password updated"})
	}
}

// Delete removes a staff account.
func (h *StaffHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, h.Checker)
		if !ok {
			return
		}
		id := c.Param("id")
		if res := s.Check(permissions.UsersDelete, "staff/"+id); !res.Allowed {
			forbidden(c, res)
			return
		}
		if id == s.Actor().ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
			return
		}
		if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "staff not found"})
				return
			}
			storeError(c, h.Log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}
