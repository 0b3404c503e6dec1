package models

import "fitdesk/internal/permissions"

type StaffStatus string

const (
	StaffActive    StaffStatus = "active"
	StaffSuspended StaffStatus = "suspended"
)

// Staff is a console account. A staff row is owned by the person it describes.
type Staff struct {
	Base
	Email        string               `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string               `gorm:"size:200" json:"name"`
	Phone        string               `gorm:"size:32" json:"phone,omitempty"`
	PasswordHash string               `gorm:"size:255" json:"-"`
	Role         permissions.Role     `gorm:"size:32;not null;index" json:"role"`
	Position     permissions.Position `gorm:"size:64" json:"position,omitempty"`
	Department   string               `gorm:"size:64;index" json:"department,omitempty"`
	Status       StaffStatus          `gorm:"size:16;default:active" json:"status"`
	CreatedBy    string               `gorm:"size:36;index" json:"created_by,omitempty"`
}

func (Staff) TableName() string { return "staff" }

func (s Staff) AccessMetadata() permissions.AccessMetadata {
	return permissions.AccessMetadata{ID: s.ID, OwnerID: s.ID, Department: s.Department}
}

func (s *Staff) Stamp(creator permissions.Actor) {
	s.CreatedBy = creator.ID
}

// Actor is the authorization view of the account.
func (s Staff) Actor() permissions.Actor {
	return permissions.Actor{ID: s.ID, Role: s.Role, Position: s.Position, Department: s.Department}
}
