package models

import (
	"time"

	"fitdesk/internal/permissions"
)

// Pass is a membership or session pass held by a member.
type Pass struct {
	Base
	MemberID          string     `gorm:"size:36;index;not null" json:"member_id" binding:"required"`
	Kind              string     `gorm:"size:64;not null" json:"kind" binding:"required"`
	Department        string     `gorm:"size:64;index" json:"department"`
	TotalSessions     int        `json:"total_sessions"`
	RemainingSessions int        `json:"remaining_sessions"`
	StartsOn          *time.Time `json:"starts_on,omitempty"`
	ExpiresOn         *time.Time `json:"expires_on,omitempty"`
	CreatedBy         string     `gorm:"size:36;index" json:"created_by"`
}

func (p Pass) AccessMetadata() permissions.AccessMetadata {
	return permissions.AccessMetadata{ID: p.ID, OwnerID: p.CreatedBy, Department: p.Department}
}

func (p *Pass) Stamp(creator permissions.Actor) {
	p.CreatedBy = creator.ID
	if p.Department == "" {
		p.Department = creator.Department
	}
	if p.RemainingSessions == 0 {
		p.RemainingSessions = p.TotalSessions
	}
}
