package models

import (
	"gorm.io/gorm"
)

type PantryStatus string

const (
	PantryStatusActive   PantryStatus = "active"
	PantryStatusInactive PantryStatus = "inactive"
)

// Pantry is a physical preparation location with a staff roster.
type Pantry struct {
	gorm.Model
	Name          string       `gorm:"not null" json:"name"`
	Location      string       `json:"location"`
	ContactNumber string       `json:"contact_number"`
	Status        PantryStatus `gorm:"default:active" json:"status"`
	Staff         []User       `gorm:"many2many:pantry_staff" json:"staff"`
}
