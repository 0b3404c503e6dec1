package models

import "fitdesk/internal/permissions"

// Trainer is the coaching profile of a staff member (PT trainer, tennis or golf pro).
type Trainer struct {
	Base
	StaffID    string `gorm:"size:36;index" json:"staff_id,omitempty"`
	Name       string `gorm:"size:100;not null" json:"name" binding:"required"`
	Department string `gorm:"size:64;index" json:"department"`
	Specialty  string `gorm:"size:200" json:"specialty,omitempty"`
	Career     string `gorm:"type:text" json:"career,omitempty"`
	Active     *bool  `gorm:"not null;default:true" json:"active"`
	CreatedBy  string `gorm:"size:36;index" json:"created_by"`
}

func (t Trainer) AccessMetadata() permissions.AccessMetadata {
	owner := t.StaffID
	if owner == "" {
		owner = t.CreatedBy
	}
	return permissions.AccessMetadata{ID: t.ID, OwnerID: owner, Department: t.Department}
}

func (t *Trainer) Stamp(creator permissions.Actor) {
	t.CreatedBy = creator.ID
	if t.Department == "" {
		t.Department = creator.Department
	}
	if t.Active == nil {
		active := true
		t.Active = &active
	}
}
