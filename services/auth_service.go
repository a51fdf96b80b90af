package services

import (
	"context"
	"fmt"

	"medimeal/models"
	"medimeal/utils"
)

type AuthService struct {
	users  UserStore
	secret []byte
}

func NewAuthService(users UserStore, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

type RegisterInput struct {
	Name       string      `json:"name" binding:"required"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	Role       models.Role `json:"role" binding:"required"`
	Contact    string      `json:"contact"`
	Department string      `json:"department"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role '%s'", ErrInvalidInput, in.Role)
	}
	existing, err := s.users.FindUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		EmployeeID: utils.GenerateEmployeeID(in.Name),
		Name:       in.Name,
		Email:      in.Email,
		Password:   hashed,
		Role:       in.Role,
		Contact:    in.Contact,
		Department: in.Department,
		Active:     true,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an active user and issues a signed token. Deactivated
// accounts fail the same way as wrong credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.Active || !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrForbidden
	}
	token, err := utils.GenerateJWT(user.ID, s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
