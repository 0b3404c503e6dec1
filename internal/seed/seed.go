package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitdesk/internal/auth"
	"fitdesk/internal/models"
	"fitdesk/internal/permissions"
)

// passwordOut receives a generated admin password. It never goes to the log.
var passwordOut io.Writer = os.Stderr

// FirstSetup ensures an administrator account exists. An existing account with
// the same email is left untouched. When password is empty a random one is
// generated and printed once to stderr.
func FirstSetup(db *gorm.DB, email, password string, log *zap.Logger) (*models.Staff, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("seed: admin email is required")
	}

	var existing models.Staff
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("seed: admin already present", zap.String("email", email))
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("seed: lookup admin: %w", err)
	}

	generated := false
	if password == "" {
		password = strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		generated = true
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("seed: hash password: %w", err)
	}

	admin := models.Staff{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         permissions.RoleAdmin,
		Position:     permissions.PositionDirector,
		Department:   "admin",
		Status:       models.StaffActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("seed: create admin: %w", err)
	}

	if generated {
		log.Warn("seed: admin created with generated password, change it after first login",
			zap.String("email", email))
		fmt.Fprintf(passwordOut, "generated password for %s: %s\n", email, password)
	} else {
		log.Info("seed: admin created", zap.String("email", email))
	}
	return &admin, nil
}
