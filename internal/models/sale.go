package models

import (
	"time"

	"fitdesk/internal/permissions"
)

// Sale is one membership, PT or lesson payment. Amount is in KRW.
type Sale struct {
	Base
	MemberID      string    `gorm:"size:36;index" json:"member_id"`
	Product       string    `gorm:"size:200;not null" json:"product" binding:"required"`
	Amount        int64     `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"size:32" json:"payment_method,omitempty"`
	Department    string    `gorm:"size:64;index" json:"department"`
	TrainerID     string    `gorm:"size:36;index" json:"trainer_id,omitempty"`
	SoldAt        time.Time `json:"sold_at"`
	CreatedBy     string    `gorm:"size:36;index" json:"created_by"`
}

func (s Sale) AccessMetadata() permissions.AccessMetadata {
	return permissions.AccessMetadata{
		ID:          s.ID,
		OwnerID:     s.CreatedBy,
		AssignedIDs: assigned(s.TrainerID),
		Department:  s.Department,
	}
}

func (s *Sale) Stamp(creator permissions.Actor) {
	s.CreatedBy = creator.ID
	if s.Department == "" {
		s.Department = creator.Department
	}
	if s.SoldAt.IsZero() {
		s.SoldAt = time.Now()
	}
}
