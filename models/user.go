package models

import (
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RolePantry   Role = "pantry"
	RoleDelivery Role = "delivery"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RolePantry, RoleDelivery:
		return true
	}
	return false
}

// Covers reports whether a caller with role r satisfies a route that requires
// the target role. admin is a superset of every role, decided here once rather
// than re-derived per route.
func (r Role) Covers(target Role) bool {
	return r == target || r == RoleAdmin
}

type User struct {
	gorm.Model
	EmployeeID string `gorm:"uniqueIndex" json:"employee_id"`
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Role       Role   `gorm:"not null" json:"role"`
	Contact    string `json:"contact"`
	Department string `json:"department"`
	Active     bool   `gorm:"default:true" json:"active"` // gates login; users are never hard-deleted
}
