package services

import (
	"context"
	"time"

	"medimeal/models"

	"golang.org/x/sync/errgroup"
)

// DashboardService aggregates read-only counts and recent lists across the
// stores. Sub-queries are independent reads issued concurrently; the merged
// result is a best-effort snapshot, not a consistent one.
type DashboardService struct {
	stats StatsStore
}

func NewDashboardService(stats StatsStore) *DashboardService {
	return &DashboardService{stats: stats}
}

const recentLimit = 5

type DashboardStats struct {
	ActivePatients      int64 `json:"active_patients"`
	ActiveDietCharts    int64 `json:"active_diet_charts"`
	ActivePantryStaff   int64 `json:"active_pantry_staff"`
	ActiveDeliveryStaff int64 `json:"active_delivery_staff"`
	DeliveredToday      int64 `json:"delivered_today"`

	RecentPatients []models.Patient    `json:"recent_patients"`
	RecentCharts   []models.DietChart  `json:"recent_diet_charts"`
	RecentTasks    []models.PantryTask `json:"recent_tasks"`
	PendingTasks   []models.PantryTask `json:"pending_tasks"`
	InTransitTasks []models.PantryTask `json:"in_transit_tasks"`
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	out := &DashboardStats{}
	dayFrom, dayTo := dayWindow(time.Now())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.ActivePatients, err = s.stats.CountActivePatients(ctx)
		return
	})
	g.Go(func() (err error) {
		out.ActiveDietCharts, err = s.stats.CountActiveCharts(ctx)
		return
	})
	g.Go(func() (err error) {
		out.ActivePantryStaff, err = s.stats.CountActiveStaff(ctx, models.RolePantry)
		return
	})
	g.Go(func() (err error) {
		out.ActiveDeliveryStaff, err = s.stats.CountActiveStaff(ctx, models.RoleDelivery)
		return
	})
	g.Go(func() (err error) {
		out.DeliveredToday, err = s.stats.CountDeliveredBetween(ctx, dayFrom, dayTo)
		return
	})
	g.Go(func() (err error) {
		out.RecentPatients, err = s.stats.RecentPatients(ctx, recentLimit)
		return
	})
	g.Go(func() (err error) {
		out.RecentCharts, err = s.stats.RecentCharts(ctx, recentLimit)
		return
	})
	g.Go(func() (err error) {
		out.RecentTasks, err = s.stats.RecentTasks(ctx, recentLimit)
		return
	})
	g.Go(func() (err error) {
		out.PendingTasks, err = s.stats.TasksWithStatus(ctx, models.TaskStatusPending, recentLimit)
		return
	})
	g.Go(func() (err error) {
		out.InTransitTasks, err = s.stats.TasksWithStatus(ctx, models.TaskStatusInTransit, recentLimit)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type Report struct {
	Date           string                      `json:"date"`
	TasksByStatus  map[models.TaskStatus]int64 `json:"tasks_by_status"`
	TotalTasks     int64                       `json:"total_tasks"`
	CreatedToday   int64                       `json:"created_today"`
	DeliveredToday int64                       `json:"delivered_today"`
}

func (s *DashboardService) Report(ctx context.Context) (*Report, error) {
	now := time.Now()
	dayFrom, dayTo := dayWindow(now)
	out := &Report{Date: now.Format("2006-01-02")}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TasksByStatus, err = s.stats.CountTasksByStatus(ctx)
		return
	})
	g.Go(func() (err error) {
		out.CreatedToday, err = s.stats.CountTasksCreatedBetween(ctx, dayFrom, dayTo)
		return
	})
	g.Go(func() (err error) {
		out.DeliveredToday, err = s.stats.CountDeliveredBetween(ctx, dayFrom, dayTo)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, n := range out.TasksByStatus {
		out.TotalTasks += n
	}
	return out, nil
}

// dayWindow returns [startOfDay, endOfDay) for t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
