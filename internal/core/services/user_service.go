package services

import (
	"context"
	"errors"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/core/domain"
	"bells-pay/internal/pkg/password"
)

// UserService manages student profiles
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries the editable profile fields. Empty fields are
// left untouched.
type UpdateProfileInput struct {
	FullName   string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Level      string `json:"level" validate:"omitempty,max=20"`
}

// ChangePasswordInput carries a password change request
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// GetProfile fetches a student's profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields. Email, matric number and
// balance are not editable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Department != "" {
		user.Department = input.Department
	}
	if input.Level != "" {
		user.Level = input.Level
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.CurrentPassword, user.Password) {
		return domain.ErrInvalidCredentials
	}

	if !password.Validate(input.NewPassword) {
		return domain.ErrWeakPassword
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}
