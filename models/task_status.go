package models

import "fmt"

// TaskStatus is the single status vocabulary for pantry tasks. Every handler
// goes through TransitionAllowed instead of writing status strings ad hoc.
type TaskStatus string

const (
	TaskStatusPending          TaskStatus = "pending"
	TaskStatusPreparing        TaskStatus = "preparing"
	TaskStatusReady            TaskStatus = "ready"
	TaskStatusAssignedDelivery TaskStatus = "assigned_delivery"
	TaskStatusInTransit        TaskStatus = "in_transit"
	TaskStatusDelivered        TaskStatus = "delivered"
)

// taskTransitions lists every legal (from, to) edge. delivered is terminal.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending:          {TaskStatusPreparing},
	TaskStatusPreparing:        {TaskStatusReady},
	TaskStatusReady:            {TaskStatusAssignedDelivery, TaskStatusInTransit},
	TaskStatusAssignedDelivery: {TaskStatusDelivered},
	TaskStatusInTransit:        {TaskStatusDelivered},
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusPreparing, TaskStatusReady,
		TaskStatusAssignedDelivery, TaskStatusInTransit, TaskStatusDelivered:
		return true
	}
	return false
}

// TransitionAllowed reports whether from → to is a legal edge. Re-submitting an
// already-applied transition is not allowed: the current state must be the
// exact predecessor, the target is never treated as a goal.
func TransitionAllowed(from, to TaskStatus) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError names both states so the caller sees exactly which
// edge was rejected.
type InvalidTransitionError struct {
	From TaskStatus
	To   TaskStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from '%s' to '%s'", e.From, e.To)
}
