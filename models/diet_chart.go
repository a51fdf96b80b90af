package models

import (
	"time"

	"gorm.io/gorm"
)

type ChartStatus string

const (
	ChartStatusActive    ChartStatus = "active"
	ChartStatusCompleted ChartStatus = "completed"
	ChartStatusCancelled ChartStatus = "cancelled"
)

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

type DietChart struct {
	gorm.Model
	PatientID    uint        `gorm:"not null;index" json:"patient_id"`
	StartDate    time.Time   `gorm:"not null" json:"start_date"`
	EndDate      time.Time   `gorm:"not null" json:"end_date"`
	Status       ChartStatus `gorm:"default:active" json:"status"`
	Restrictions string      `json:"restrictions"` // comma-separated
	CreatedByID  uint        `json:"created_by_id"`
	Meals        []Meal      `json:"meals"`
}

// Meal holds only the dietary content. Preparation state lives on the
// PantryTask derived from it, which is the single source of truth.
type Meal struct {
	gorm.Model
	DietChartID  uint     `gorm:"not null;index" json:"diet_chart_id"`
	Type         MealType `gorm:"not null" json:"type"`
	Items        string   `gorm:"not null" json:"items"` // comma-separated
	Instructions string   `json:"instructions"`
}
