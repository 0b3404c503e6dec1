package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"fitdesk/internal/permissions"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Task is an internal work item. AssignedTo holds a JSON array of staff IDs
// and is NULL when the task was never assigned.
type Task struct {
	Base
	Title       string         `gorm:"size:200;not null" json:"title" binding:"required"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Department  string         `gorm:"size:64;index" json:"department"`
	Status      TaskStatus     `gorm:"size:16;default:todo" json:"status"`
	Priority    string         `gorm:"size:16" json:"priority,omitempty"`
	DueAt       *time.Time     `json:"due_at,omitempty"`
	AssignedTo  datatypes.JSON `gorm:"type:json" json:"assigned_to,omitempty"`
	CreatedBy   string         `gorm:"size:36;index" json:"created_by"`
}

// Assignees decodes AssignedTo. It returns nil when the column is unset.
// A single JSON string is accepted as a one-element list.
func (t *Task) Assignees() []string {
	if len(t.AssignedTo) == 0 || string(t.AssignedTo) == "null" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(t.AssignedTo, &ids); err == nil {
		if ids == nil {
			ids = []string{}
		}
		return ids
	}
	var one string
	if err := json.Unmarshal(t.AssignedTo, &one); err == nil && one != "" {
		return []string{one}
	}
	return []string{}
}

func (t *Task) SetAssignees(ids []string) {
	if ids == nil {
		ids = []string{}
	}
	raw, _ := json.Marshal(ids)
	t.AssignedTo = datatypes.JSON(raw)
}

func (t Task) AccessMetadata() permissions.AccessMetadata {
	return permissions.AccessMetadata{
		ID:          t.ID,
		OwnerID:     t.CreatedBy,
		AssignedIDs: t.Assignees(),
		Department:  t.Department,
	}
}

func (t *Task) Stamp(creator permissions.Actor) {
	t.CreatedBy = creator.ID
	if t.Department == "" {
		t.Department = creator.Department
	}
	if t.Status == "" {
		t.Status = TaskTodo
	}
	// an empty list on create means unassigned
	if t.AssignedTo != nil && len(t.Assignees()) == 0 {
		t.AssignedTo = nil
	}
}
