package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionAllowed(t *testing.T) {
	all := []TaskStatus{
		TaskStatusPending, TaskStatusPreparing, TaskStatusReady,
		TaskStatusAssignedDelivery, TaskStatusInTransit, TaskStatusDelivered,
	}
	allowed := map[TaskStatus][]TaskStatus{
		TaskStatusPending:          {TaskStatusPreparing},
		TaskStatusPreparing:        {TaskStatusReady},
		TaskStatusReady:            {TaskStatusAssignedDelivery, TaskStatusInTransit},
		TaskStatusAssignedDelivery: {TaskStatusDelivered},
		TaskStatusInTransit:        {TaskStatusDelivered},
		TaskStatusDelivered:        {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, TransitionAllowed(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransitionNotIdempotent(t *testing.T) {
	// re-submitting an already-applied transition must be rejected, not
	// treated as a no-op
	assert.False(t, TransitionAllowed(TaskStatusReady, TaskStatusReady))
	assert.False(t, TransitionAllowed(TaskStatusDelivered, TaskStatusDelivered))
}

func TestDeliveredIsTerminal(t *testing.T) {
	for _, to := range []TaskStatus{
		TaskStatusPending, TaskStatusPreparing, TaskStatusReady,
		TaskStatusAssignedDelivery, TaskStatusInTransit,
	} {
		assert.False(t, TransitionAllowed(TaskStatusDelivered, to))
	}
}

func TestInvalidTransitionErrorNamesBothStates(t *testing.T) {
	err := &InvalidTransitionError{From: TaskStatusPending, To: TaskStatusDelivered}
	assert.Contains(t, err.Error(), "pending")
	assert.Contains(t, err.Error(), "delivered")
}

func TestRoleCovers(t *testing.T) {
	assert.True(t, RoleAdmin.Covers(RolePantry))
	assert.True(t, RoleAdmin.Covers(RoleManager))
	assert.True(t, RoleAdmin.Covers(RoleDelivery))
	assert.True(t, RolePantry.Covers(RolePantry))
	assert.False(t, RolePantry.Covers(RoleManager))
	assert.False(t, RoleDelivery.Covers(RolePantry))
	assert.False(t, RoleManager.Covers(RoleAdmin))
}
