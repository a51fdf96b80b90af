package repository

import (
	"context"
	"errors"

	"medimeal/models"

	"gorm.io/gorm"
)

type DietChartRepository struct {
	DB *gorm.DB
}

func NewDietChartRepository(db *gorm.DB) *DietChartRepository {
	return &DietChartRepository{DB: db}
}

// CreateChartWithTasks inserts the chart (meals included), then the derived
// tasks, in one transaction so a failed fan-out cannot leave an orphaned
// chart.
func (r *DietChartRepository) CreateChartWithTasks(ctx context.Context, chart *models.DietChart, buildTasks func(*models.DietChart) []models.PantryTask) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chart).Error; err != nil {
			return err
		}
		tasks := buildTasks(chart)
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}

func (r *DietChartRepository) FindChartByID(ctx context.Context, id uint) (*models.DietChart, error) {
	var chart models.DietChart
	err := r.DB.WithContext(ctx).Preload("Meals").First(&chart, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

func (r *DietChartRepository) ListCharts(ctx context.Context, patientID uint, status models.ChartStatus) ([]models.DietChart, error) {
	q := r.DB.WithContext(ctx).Model(&models.DietChart{}).Preload("Meals")
	if patientID != 0 {
		q = q.Where("patient_id = ?", patientID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var charts []models.DietChart
	if err := q.Order("created_at DESC").Find(&charts).Error; err != nil {
		return nil, err
	}
	return charts, nil
}

func (r *DietChartRepository) SaveChart(ctx context.Context, chart *models.DietChart) error {
	return r.DB.WithContext(ctx).Omit("Meals").Save(chart).Error
}

func (r *DietChartRepository) FindMeal(ctx context.Context, chartID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.DB.WithContext(ctx).Where("id = ? AND diet_chart_id = ?", mealID, chartID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *DietChartRepository) SaveMeal(ctx context.Context, meal *models.Meal) error {
	return r.DB.WithContext(ctx).Save(meal).Error
}
