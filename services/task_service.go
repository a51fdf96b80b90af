package services

import (
	"context"
	"fmt"
	"time"

	"medimeal/models"
)

// TaskService owns the meal-task lifecycle. Every status change in the system
// funnels through Transition, which consults the transition table, applies the
// per-edge role and identity guards, and writes conditionally so that two
// racing requests cannot both consume the same prior state.
type TaskService struct {
	tasks TaskStore
	users UserStore
}

func NewTaskService(tasks TaskStore, users UserStore) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// TransitionInput carries the optional payload of a status update.
type TransitionInput struct {
	DeliveryPersonID *uint  `json:"delivery_person_id"`
	Notes            string `json:"notes"`
}

func (s *TaskService) Get(ctx context.Context, id uint) (*models.PantryTask, error) {
	task, err := s.tasks.FindTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, f TaskFilter) ([]models.PantryTask, error) {
	return s.tasks.ListTasks(ctx, f)
}

// MyTasks returns the work relevant to the caller: preparation assignments for
// pantry staff, delivery assignments for delivery staff.
func (s *TaskService) MyTasks(ctx context.Context, actor *models.User) ([]models.PantryTask, error) {
	if actor.Role == models.RoleDelivery {
		return s.tasks.ListTasks(ctx, TaskFilter{DeliveryPersonID: actor.ID})
	}
	return s.tasks.ListTasks(ctx, TaskFilter{AssignedToID: actor.ID})
}

// DeliveryTasks returns what a delivery person can act on: ready tasks with no
// deliverer yet, plus their own assigned and in-transit tasks.
func (s *TaskService) DeliveryTasks(ctx context.Context, actor *models.User) ([]models.PantryTask, error) {
	open, err := s.tasks.ListTasks(ctx, TaskFilter{Status: models.TaskStatusReady, Unassigned: true})
	if err != nil {
		return nil, err
	}
	mine, err := s.tasks.ListTasks(ctx, TaskFilter{
		DeliveryPersonID: actor.ID,
		Statuses:         []models.TaskStatus{models.TaskStatusAssignedDelivery, models.TaskStatusInTransit},
	})
	if err != nil {
		return nil, err
	}
	return append(open, mine...), nil
}

// AssignPreparer sets the pantry staff member responsible for a task. The
// target must be an active user with the pantry role.
func (s *TaskService) AssignPreparer(ctx context.Context, taskID, userID uint) (*models.PantryTask, error) {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == models.TaskStatusDelivered {
		return nil, fmt.Errorf("%w: task is already delivered", ErrInvalidInput)
	}
	staff, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.Active || staff.Role != models.RolePantry {
		return nil, fmt.Errorf("%w: assignee must be active pantry staff", ErrInvalidInput)
	}
	task.AssignedToID = &staff.ID
	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Transition moves a task along the lifecycle. The write only succeeds if the
// stored status still equals the observed prior state; a miss surfaces as
// ErrConflict rather than silently losing an update.
func (s *TaskService) Transition(ctx context.Context, taskID uint, to models.TaskStatus, actor *models.User, in TransitionInput) (*models.PantryTask, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status '%s'", ErrInvalidInput, to)
	}
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	from := task.Status
	if !models.TransitionAllowed(from, to) {
		return nil, &models.InvalidTransitionError{From: from, To: to}
	}

	now := time.Now()
	set := map[string]interface{}{}

	switch to {
	case models.TaskStatusPreparing:
		if !actor.Role.Covers(models.RolePantry) {
			return nil, ErrForbidden
		}
		set["preparation_start_time"] = now
		if task.AssignedToID == nil {
			// whoever starts preparation becomes the preparer
			set["assigned_to_id"] = actor.ID
		}

	case models.TaskStatusReady:
		if !actor.Role.Covers(models.RolePantry) {
			return nil, ErrForbidden
		}
		set["preparation_end_time"] = now

	case models.TaskStatusAssignedDelivery:
		if !actor.Role.Covers(models.RolePantry) {
			return nil, ErrForbidden
		}
		if in.DeliveryPersonID == nil {
			return nil, fmt.Errorf("%w: delivery_person_id is required", ErrInvalidInput)
		}
		courier, err := s.users.FindUserByID(ctx, *in.DeliveryPersonID)
		if err != nil {
			return nil, err
		}
		if courier == nil || !courier.Active || courier.Role != models.RoleDelivery {
			return nil, fmt.Errorf("%w: delivery person must be active delivery staff", ErrInvalidInput)
		}
		set["delivery_assigned_time"] = now
		set["delivery_person_id"] = courier.ID

	case models.TaskStatusInTransit:
		if !actor.Role.Covers(models.RoleDelivery) {
			return nil, ErrForbidden
		}
		if task.DeliveryPersonID != nil {
			return nil, fmt.Errorf("%w: task already has a delivery person", ErrInvalidInput)
		}
		set["delivery_start_time"] = now
		set["delivery_person_id"] = actor.ID

	case models.TaskStatusDelivered:
		// strict identity check: only the assigned deliverer completes, admin
		// included
		if task.DeliveryPersonID == nil || *task.DeliveryPersonID != actor.ID {
			return nil, ErrForbidden
		}
		set["delivery_completion_time"] = now
		if in.Notes != "" {
			set["notes"] = in.Notes
		}
	}

	ok, err := s.tasks.TransitionTask(ctx, task.ID, from, to, set)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConflict
	}
	return s.Get(ctx, task.ID)
}
