package repository

import (
	"context"
	"time"

	"medimeal/models"

	"gorm.io/gorm"
)

// StatsRepository backs the dashboard: counts and bounded recent-N lists.
// Every call recomputes from source; there is no caching.
type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) CountActivePatients(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Patient{}).Where("active = ?", true).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountActiveCharts(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.DietChart{}).Where("status = ?", models.ChartStatusActive).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountActiveStaff(ctx context.Context, role models.Role) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.User{}).Where("role = ? AND active = ?", role, true).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountDeliveredBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.PantryTask{}).
		Where("status = ? AND delivery_completion_time >= ? AND delivery_completion_time < ?",
			models.TaskStatusDelivered, from, to).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountTasksByStatus(ctx context.Context) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		N      int64
	}
	err := r.DB.WithContext(ctx).Model(&models.PantryTask{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *StatsRepository) CountTasksCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.PantryTask{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) RecentPatients(ctx context.Context, limit int) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.DB.WithContext(ctx).Where("active = ?", true).
		Order("created_at DESC").Limit(limit).Find(&patients).Error
	return patients, err
}

func (r *StatsRepository) RecentCharts(ctx context.Context, limit int) ([]models.DietChart, error) {
	var charts []models.DietChart
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&charts).Error
	return charts, err
}

func (r *StatsRepository) RecentTasks(ctx context.Context, limit int) ([]models.PantryTask, error) {
	var tasks []models.PantryTask
	err := r.DB.WithContext(ctx).Order("updated_at DESC").Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (r *StatsRepository) TasksWithStatus(ctx context.Context, status models.TaskStatus, limit int) ([]models.PantryTask, error) {
	var tasks []models.PantryTask
	err := r.DB.WithContext(ctx).Where("status = ?", status).
		Order("created_at ASC").Limit(limit).Find(&tasks).Error
	return tasks, err
}
