package repository

import (
	"context"
	"errors"

	"medimeal/models"
	"medimeal/services"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) FindTaskByID(ctx context.Context, id uint) (*models.PantryTask, error) {
	var task models.PantryTask
	err := r.DB.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, f services.TaskFilter) ([]models.PantryTask, error) {
	q := r.DB.WithContext(ctx).Model(&models.PantryTask{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.AssignedToID != 0 {
		q = q.Where("assigned_to_id = ?", f.AssignedToID)
	}
	if f.DeliveryPersonID != 0 {
		q = q.Where("delivery_person_id = ?", f.DeliveryPersonID)
	}
	if f.PatientID != 0 {
		q = q.Where("patient_id = ?", f.PatientID)
	}
	if f.Unassigned {
		q = q.Where("delivery_person_id IS NULL")
	}
	var tasks []models.PantryTask
	if err := q.Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// TransitionTask is a conditional write: the row is only updated if its status
// still equals from. A zero rows-affected result means another request
// consumed the transition first.
func (r *TaskRepository) TransitionTask(ctx context.Context, id uint, from, to models.TaskStatus, set map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range set {
		updates[k] = v
	}
	res := r.DB.WithContext(ctx).
		Model(&models.PantryTask{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TaskRepository) SaveTask(ctx context.Context, task *models.PantryTask) error {
	return r.DB.WithContext(ctx).Save(task).Error
}
