package services

import (
	"context"
	"time"

	"medimeal/models"
)

// Store interfaces consumed by the services. The gorm implementations live in
// the repository package; tests substitute in-memory fakes. Find methods
// return (nil, nil) when no row matches so callers can distinguish "absent"
// from a store failure.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListStaff(ctx context.Context, role models.Role, activeOnly bool) ([]models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}

type PatientStore interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	FindPatientByID(ctx context.Context, id uint) (*models.Patient, error)
	ListPatients(ctx context.Context, activeOnly bool) ([]models.Patient, error)
	SavePatient(ctx context.Context, patient *models.Patient) error
}

type ChartStore interface {
	// CreateChartWithTasks inserts the chart (and its meals), then the tasks
	// produced by buildTasks, in one transaction. Either everything lands or
	// nothing does.
	CreateChartWithTasks(ctx context.Context, chart *models.DietChart, buildTasks func(*models.DietChart) []models.PantryTask) error
	FindChartByID(ctx context.Context, id uint) (*models.DietChart, error)
	ListCharts(ctx context.Context, patientID uint, status models.ChartStatus) ([]models.DietChart, error)
	SaveChart(ctx context.Context, chart *models.DietChart) error
	FindMeal(ctx context.Context, chartID, mealID uint) (*models.Meal, error)
	SaveMeal(ctx context.Context, meal *models.Meal) error
}

type TaskFilter struct {
	Status           models.TaskStatus
	Statuses         []models.TaskStatus
	AssignedToID     uint
	DeliveryPersonID uint
	PatientID        uint
	Unassigned       bool // no delivery person yet
}

type TaskStore interface {
	FindTaskByID(ctx context.Context, id uint) (*models.PantryTask, error)
	ListTasks(ctx context.Context, f TaskFilter) ([]models.PantryTask, error)
	// TransitionTask applies set only if the stored status still equals from.
	// Returns false when the conditional write matched no row.
	TransitionTask(ctx context.Context, id uint, from, to models.TaskStatus, set map[string]interface{}) (bool, error)
	SaveTask(ctx context.Context, task *models.PantryTask) error
}

type PantryStore interface {
	CreatePantry(ctx context.Context, pantry *models.Pantry) error
	FindPantryByID(ctx context.Context, id uint) (*models.Pantry, error)
	ListPantries(ctx context.Context) ([]models.Pantry, error)
	SavePantry(ctx context.Context, pantry *models.Pantry) error
	AddPantryStaff(ctx context.Context, pantryID uint, user *models.User) error
}

type StatsStore interface {
	CountActivePatients(ctx context.Context) (int64, error)
	CountActiveCharts(ctx context.Context) (int64, error)
	CountActiveStaff(ctx context.Context, role models.Role) (int64, error)
	CountDeliveredBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountTasksByStatus(ctx context.Context) (map[models.TaskStatus]int64, error)
	CountTasksCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	RecentPatients(ctx context.Context, limit int) ([]models.Patient, error)
	RecentCharts(ctx context.Context, limit int) ([]models.DietChart, error)
	RecentTasks(ctx context.Context, limit int) ([]models.PantryTask, error)
	TasksWithStatus(ctx context.Context, status models.TaskStatus, limit int) ([]models.PantryTask, error)
}
