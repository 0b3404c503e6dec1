package models

import (
	"time"

	"fitdesk/internal/permissions"
)

type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberPaused  MemberStatus = "paused"
	MemberExpired MemberStatus = "expired"
)

// Member is a facility client. TrainerID is the staff member responsible for them.
type Member struct {
	Base
	Name       string       `gorm:"size:100;not null" json:"name" binding:"required"`
	Phone      string       `gorm:"size:32;index" json:"phone"`
	Gender     string       `gorm:"size:8" json:"gender,omitempty"`
	BirthDate  *time.Time   `json:"birth_date,omitempty"`
	Department string       `gorm:"size:64;index" json:"department"`
	TrainerID  string       `gorm:"size:36;index" json:"trainer_id,omitempty"`
	Status     MemberStatus `gorm:"size:16;default:active" json:"status"`
	Memo       string       `gorm:"type:text" json:"memo,omitempty"`
	CreatedBy  string       `gorm:"size:36;index" json:"created_by"`
}

func (m Member) AccessMetadata() permissions.AccessMetadata {
	return permissions.AccessMetadata{
		ID:          m.ID,
		OwnerID:     m.CreatedBy,
		AssignedIDs: assigned(m.TrainerID),
		Department:  m.Department,
	}
}

func (m *Member) Stamp(creator permissions.Actor) {
	m.CreatedBy = creator.ID
	if m.Department == "" {
		m.Department = creator.Department
	}
}
