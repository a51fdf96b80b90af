package services

import (
	"context"
	"fmt"

	"medimeal/models"
)

type PantryService struct {
	pantries PantryStore
	users    UserStore
}

func NewPantryService(pantries PantryStore, users UserStore) *PantryService {
	return &PantryService{pantries: pantries, users: users}
}

type PantryInput struct {
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
}

func (s *PantryService) Create(ctx context.Context, in PantryInput) (*models.Pantry, error) {
	pantry := &models.Pantry{
		Name:          in.Name,
		Location:      in.Location,
		ContactNumber: in.ContactNumber,
		Status:        models.PantryStatusActive,
	}
	if err := s.pantries.CreatePantry(ctx, pantry); err != nil {
		return nil, err
	}
	return pantry, nil
}

func (s *PantryService) List(ctx context.Context) ([]models.Pantry, error) {
	return s.pantries.ListPantries(ctx)
}

type PantryUpdateInput struct {
	Name          string               `json:"name"`
	Location      string               `json:"location"`
	ContactNumber string               `json:"contact_number"`
	Status        *models.PantryStatus `json:"status"`
}

func (s *PantryService) Update(ctx context.Context, id uint, in PantryUpdateInput) (*models.Pantry, error) {
	pantry, err := s.pantries.FindPantryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pantry == nil {
		return nil, ErrNotFound
	}
	if in.Name != "" {
		pantry.Name = in.Name
	}
	if in.Location != "" {
		pantry.Location = in.Location
	}
	if in.ContactNumber != "" {
		pantry.ContactNumber = in.ContactNumber
	}
	if in.Status != nil {
		switch *in.Status {
		case models.PantryStatusActive, models.PantryStatusInactive:
			pantry.Status = *in.Status
		default:
			return nil, fmt.Errorf("%w: unknown pantry status '%s'", ErrInvalidInput, *in.Status)
		}
	}
	if err := s.pantries.SavePantry(ctx, pantry); err != nil {
		return nil, err
	}
	return pantry, nil
}

// AddStaff puts an active pantry-role user on the pantry's roster.
func (s *PantryService) AddStaff(ctx context.Context, pantryID, userID uint) error {
	pantry, err := s.pantries.FindPantryByID(ctx, pantryID)
	if err != nil {
		return err
	}
	if pantry == nil {
		return ErrNotFound
	}
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !user.Active || user.Role != models.RolePantry {
		return fmt.Errorf("%w: staff member must be active pantry staff", ErrInvalidInput)
	}
	return s.pantries.AddPantryStaff(ctx, pantryID, user)
}
