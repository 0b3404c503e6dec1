package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"fitdesk/internal/permissions"
)

func TestTaskAssignees(t *testing.T) {
	var task Task
	assert.Nil(t, task.Assignees())

	task.AssignedTo = datatypes.JSON("null")
	assert.Nil(t, task.Assignees())

	task.AssignedTo = datatypes.JSON(`["a","b"]`)
	assert.Equal(t, []string{"a", "b"}, task.Assignees())

	task.AssignedTo = datatypes.JSON(`"solo"`)
	assert.Equal(t, []string{"solo"}, task.Assignees())

	task.AssignedTo = datatypes.JSON(`{"x":1}`)
	assert.Equal(t, []string{}, task.Assignees())

	task.SetAssignees(nil)
	assert.JSONEq(t, `[]`, string(task.AssignedTo))
	assert.Equal(t, []string{}, task.Assignees())

	task.SetAssignees([]string{"c"})
	assert.Equal(t, []string{"c"}, task.AccessMetadata().AssignedIDs)
}

func TestAccessMetadata(t *testing.T) {
	staff := Staff{Base: Base{ID: "s1"}, Department: "golf", CreatedBy: "admin"}
	assert.Equal(t, permissions.AccessMetadata{ID: "s1", OwnerID: "s1", Department: "golf"}, staff.AccessMetadata())

	member := Member{Base: Base{ID: "m1"}, Department: "fitness", TrainerID: "t1", CreatedBy: "desk"}
	assert.Equal(t, permissions.AccessMetadata{ID: "m1", OwnerID: "desk", AssignedIDs: []string{"t1"}, Department: "fitness"}, member.AccessMetadata())

	member.TrainerID = ""
	assert.Nil(t, member.AccessMetadata().AssignedIDs)

	trainer := Trainer{Base: Base{ID: "tr"}, CreatedBy: "admin"}
	assert.Equal(t, "admin", trainer.AccessMetadata().OwnerID)
	trainer.StaffID = "s9"
	assert.Equal(t, "s9", trainer.AccessMetadata().OwnerID)
}

func TestStampDefaults(t *testing.T) {
	creator := permissions.Actor{ID: "u1", Role: permissions.RoleTennis, Department: "tennis"}

	sale := &Sale{Department: "golf"}
	sale.Stamp(creator)
	assert.Equal(t, "u1", sale.CreatedBy)
	assert.Equal(t, "golf", sale.Department)
	assert.False(t, sale.SoldAt.IsZero())

	pass := &Pass{TotalSessions: 10}
	pass.Stamp(creator)
	assert.Equal(t, "tennis", pass.Department)
	assert.Equal(t, 10, pass.RemainingSessions)

	task := &Task{}
	task.Stamp(creator)
	assert.Equal(t, TaskTodo, task.Status)
	assert.Equal(t, "tennis", task.Department)

	empty := &Task{AssignedTo: datatypes.JSON(`[]`)}
	empty.Stamp(creator)
	assert.Nil(t, empty.AssignedTo)
	assert.Nil(t, empty.AccessMetadata().AssignedIDs)

	assigned := &Task{AssignedTo: datatypes.JSON(`["u2"]`)}
	assigned.Stamp(creator)
	assert.Equal(t, []string{"u2"}, assigned.Assignees())

	trainer := &Trainer{}
	trainer.Stamp(creator)
	if assert.NotNil(t, trainer.Active) {
		assert.True(t, *trainer.Active)
	}
	off := false
	retired := &Trainer{Active: &off}
	retired.Stamp(creator)
	assert.False(t, *retired.Active)

	staff := &Staff{}
	staff.Stamp(creator)
	assert.Equal(t, "u1", staff.CreatedBy)
	assert.Empty(t, staff.Department)
}

func TestClearIdentity(t *testing.T) {
	m := &Member{Base: Base{ID: "keep-out"}}
	m.ClearIdentity()
	assert.Empty(t, m.GetID())
}

var _ Record = (*Member)(nil)
var _ Record = (*Trainer)(nil)
var _ Record = (*Sale)(nil)
var _ Record = (*Pass)(nil)
var _ Record = (*Task)(nil)
var _ Record = (*Staff)(nil)
