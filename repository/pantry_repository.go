package repository

import (
	"context"
	"errors"

	"medimeal/models"

	"gorm.io/gorm"
)

type PantryRepository struct {
	DB *gorm.DB
}

func NewPantryRepository(db *gorm.DB) *PantryRepository {
	return &PantryRepository{DB: db}
}

func (r *PantryRepository) CreatePantry(ctx context.Context, pantry *models.Pantry) error {
	return r.DB.WithContext(ctx).Create(pantry).Error
}

func (r *PantryRepository) FindPantryByID(ctx context.Context, id uint) (*models.Pantry, error) {
	var pantry models.Pantry
	err := r.DB.WithContext(ctx).Preload("Staff").First(&pantry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pantry, nil
}

func (r *PantryRepository) ListPantries(ctx context.Context) ([]models.Pantry, error) {
	var pantries []models.Pantry
	if err := r.DB.WithContext(ctx).Preload("Staff").Order("created_at ASC").Find(&pantries).Error; err != nil {
		return nil, err
	}
	return pantries, nil
}

func (r *PantryRepository) SavePantry(ctx context.Context, pantry *models.Pantry) error {
	return r.DB.WithContext(ctx).Omit("Staff").Save(pantry).Error
}

func (r *PantryRepository) AddPantryStaff(ctx context.Context, pantryID uint, user *models.User) error {
	pantry := models.Pantry{Model: gorm.Model{ID: pantryID}}
	return r.DB.WithContext(ctx).Model(&pantry).Association("Staff").Append(user)
}
