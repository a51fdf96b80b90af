package models

import (
	"time"

	"gorm.io/gorm"
)

// PantryTask is one schedulable unit of meal preparation and delivery work,
// one per meal of a diet chart. Tasks are a historical record and are never
// deleted.
type PantryTask struct {
	gorm.Model
	PatientID        uint       `gorm:"not null;index" json:"patient_id"`
	DietChartID      uint       `gorm:"not null;index" json:"diet_chart_id"`
	MealID           uint       `gorm:"not null;index" json:"meal_id"`
	Status           TaskStatus `gorm:"not null;default:pending;index" json:"status"`
	AssignedToID     *uint      `json:"assigned_to_id"`      // preparer
	DeliveryPersonID *uint      `json:"delivery_person_id"`
	Notes            string     `json:"notes"`

	PreparationStartTime   *time.Time `json:"preparation_start_time"`
	PreparationEndTime     *time.Time `json:"preparation_end_time"`
	DeliveryAssignedTime   *time.Time `json:"delivery_assigned_time"`
	DeliveryStartTime      *time.Time `json:"delivery_start_time"`
	DeliveryCompletionTime *time.Time `json:"delivery_completion_time"`
}
