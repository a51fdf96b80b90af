package models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name               string `gorm:"not null" json:"name"`
	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	RoomNumber         string `gorm:"not null" json:"room_number"`
	BedNumber          string `json:"bed_number"`
	FloorNumber        string `json:"floor_number"`
	Diseases           string `json:"diseases"`  // comma-separated
	Allergies          string `json:"allergies"` // comma-separated
	ContactNumber      string `json:"contact_number"`
	EmergencyContact   string `json:"emergency_contact"`
	Active             bool   `gorm:"default:true" json:"active"`
	CurrentDietChartID *uint  `json:"current_diet_chart_id"` // weak ref, at most one active chart by convention
}
