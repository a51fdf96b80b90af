package services

import (
	"context"
	"fmt"
	"time"

	"medimeal/models"
)

type DietChartService struct {
	charts   ChartStore
	patients PatientStore
}

func NewDietChartService(charts ChartStore, patients PatientStore) *DietChartService {
	return &DietChartService{charts: charts, patients: patients}
}

type MealInput struct {
	Type         models.MealType `json:"type" binding:"required"`
	Items        []string        `json:"items" binding:"required"`
	Instructions string          `json:"instructions"`
}

type ChartInput struct {
	PatientID    uint        `json:"patient_id" binding:"required"`
	StartDate    time.Time   `json:"start_date" binding:"required"`
	EndDate      time.Time   `json:"end_date" binding:"required"`
	Restrictions []string    `json:"restrictions"`
	Meals        []MealInput `json:"meals" binding:"required,min=1"`
}

// Create inserts the chart and fans out one pending task per meal in a single
// transaction, then points the patient at the new chart.
func (s *DietChartService) Create(ctx context.Context, in ChartInput, createdBy uint) (*models.DietChart, error) {
	patient, err := s.patients.FindPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || !patient.Active {
		return nil, ErrNotFound
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}

	chart := &models.DietChart{
		PatientID:    in.PatientID,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       models.ChartStatusActive,
		Restrictions: joinList(in.Restrictions),
		CreatedByID:  createdBy,
	}
	for _, m := range in.Meals {
		if !m.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown meal type '%s'", ErrInvalidInput, m.Type)
		}
		if len(m.Items) == 0 {
			return nil, fmt.Errorf("%w: meal items are required", ErrInvalidInput)
		}
		chart.Meals = append(chart.Meals, models.Meal{
			Type:         m.Type,
			Items:        joinList(m.Items),
			Instructions: m.Instructions,
		})
	}

	err = s.charts.CreateChartWithTasks(ctx, chart, func(c *models.DietChart) []models.PantryTask {
		tasks := make([]models.PantryTask, 0, len(c.Meals))
		for _, meal := range c.Meals {
			tasks = append(tasks, models.PantryTask{
				PatientID:   c.PatientID,
				DietChartID: c.ID,
				MealID:      meal.ID,
				Status:      models.TaskStatusPending,
			})
		}
		return tasks
	})
	if err != nil {
		return nil, err
	}

	patient.CurrentDietChartID = &chart.ID
	if err := s.patients.SavePatient(ctx, patient); err != nil {
		return nil, err
	}
	return chart, nil
}

func (s *DietChartService) Get(ctx context.Context, id uint) (*models.DietChart, error) {
	chart, err := s.charts.FindChartByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chart == nil {
		return nil, ErrNotFound
	}
	return chart, nil
}

func (s *DietChartService) List(ctx context.Context, patientID uint, status models.ChartStatus) ([]models.DietChart, error) {
	return s.charts.ListCharts(ctx, patientID, status)
}

type ChartUpdateInput struct {
	StartDate    *time.Time          `json:"start_date"`
	EndDate      *time.Time          `json:"end_date"`
	Status       *models.ChartStatus `json:"status"`
	Restrictions []string            `json:"restrictions"`
}

func (s *DietChartService) Update(ctx context.Context, id uint, in ChartUpdateInput) (*models.DietChart, error) {
	chart, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.StartDate != nil {
		chart.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		chart.EndDate = *in.EndDate
	}
	if in.Status != nil {
		switch *in.Status {
		case models.ChartStatusActive, models.ChartStatusCompleted, models.ChartStatusCancelled:
			chart.Status = *in.Status
		default:
			return nil, fmt.Errorf("%w: unknown chart status '%s'", ErrInvalidInput, *in.Status)
		}
	}
	if in.Restrictions != nil {
		chart.Restrictions = joinList(in.Restrictions)
	}
	if err := s.charts.SaveChart(ctx, chart); err != nil {
		return nil, err
	}
	return chart, nil
}

// Cancel is chart-level cancellation; individual tasks are never cancelled.
func (s *DietChartService) Cancel(ctx context.Context, id uint) error {
	chart, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	chart.Status = models.ChartStatusCancelled
	return s.charts.SaveChart(ctx, chart)
}

type MealUpdateInput struct {
	Items        []string `json:"items"`
	Instructions *string  `json:"instructions"`
}

func (s *DietChartService) UpdateMeal(ctx context.Context, chartID, mealID uint, in MealUpdateInput) (*models.Meal, error) {
	meal, err := s.charts.FindMeal(ctx, chartID, mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, ErrNotFound
	}
	if in.Items != nil {
		meal.Items = joinList(in.Items)
	}
	if in.Instructions != nil {
		meal.Instructions = *in.Instructions
	}
	if err := s.charts.SaveMeal(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}
