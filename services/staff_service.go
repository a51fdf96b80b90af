package services

import (
	"context"
	"fmt"

	"medimeal/models"
)

// StaffService is the manager's view over the identity store: roster listings
// and role/contact/active changes. Accounts are created through AuthService
// and soft-deactivated here, never hard-deleted.
type StaffService struct {
	users UserStore
}

func NewStaffService(users UserStore) *StaffService {
	return &StaffService{users: users}
}

func (s *StaffService) List(ctx context.Context, role models.Role) ([]models.User, error) {
	if role != "" && !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role '%s'", ErrInvalidInput, role)
	}
	return s.users.ListStaff(ctx, role, true)
}

type StaffUpdateInput struct {
	Name       string       `json:"name"`
	Role       *models.Role `json:"role"`
	Contact    string       `json:"contact"`
	Department string       `json:"department"`
	Active     *bool        `json:"active"`
}

func (s *StaffService) Update(ctx context.Context, id uint, in StaffUpdateInput) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role '%s'", ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	if in.Contact != "" {
		user.Contact = in.Contact
	}
	if in.Department != "" {
		user.Department = in.Department
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *StaffService) Deactivate(ctx context.Context, id uint) error {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	user.Active = false
	return s.users.SaveUser(ctx, user)
}
