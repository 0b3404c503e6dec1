package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	RequestID string         `gorm:"size:64;index" json:"request_id,omitempty"`
	ActorID   string         `gorm:"size:36;index" json:"actor_id"`
	Role      string         `gorm:"size:32" json:"role"`
	Action    string         `gorm:"size:200;not null" json:"action"`      // e.g. "tasks.create", "sales.delete"
	Resource  string         `gorm:"size:200" json:"resource"`             // e.g. "tasks/9c1e..."
	Result    string         `gorm:"size:16;index;not null" json:"result"` // allowed | denied
	Reason    string         `gorm:"size:500" json:"reason,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
