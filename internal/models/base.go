package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitdesk/internal/permissions"
)

// Base carries the UUID primary key and timestamps shared by the console tables.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Base) GetID() string { return b.ID }

// ClearIdentity zeroes the key and creation time so a decoded body can be
// used as an update patch.
func (b *Base) ClearIdentity() {
	b.ID = ""
	b.CreatedAt = time.Time{}
}

// Record is a console row the authorization core can govern.
type Record interface {
	permissions.Governed
	GetID() string
	ClearIdentity()
	// Stamp records the creator and defaults the department to the creator's.
	Stamp(creator permissions.Actor)
}

// assigned turns an optional single assignee into the core's assignment list.
func assigned(id string) []string {
	if id == "" {
		return nil
	}
	return []string{id}
}
