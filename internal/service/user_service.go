// Package service contains the domain logic between handlers and repositories.
package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed work factor for password hashing.
const BcryptCost = 10

// UserService owns profile and credential mutations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID loads a user by id.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ChangeUserName updates the caller's username. Collisions surface as
// DuplicateField from the store constraint.
func (s *UserService) ChangeUserName(ctx context.Context, userID uint, userName string) (*models.User, error) {
	if userName == "" {
		return nil, models.NewValidationError("new username is required")
	}

	user, err := s.userRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.UserName = userName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeBio updates the caller's bio.
func (s *UserService) ChangeBio(ctx context.Context, userID uint, bio string) (*models.User, error) {
	if bio == "" {
		return nil, models.NewValidationError("bio is required")
	}

	user, err := s.userRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Bio = bio
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword re-hashes and persists a new password after checking
// the old one. A new password equal to the old one is a no-op and is
// rejected.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (*models.User, error) {
	if oldPassword == "" {
		return nil, models.NewValidationError("old password is required")
	}
	if newPassword == "" {
		return nil, models.NewValidationError("new password is required")
	}

	user, err := s.userRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return nil, models.NewUnauthorizedError("Incorrect old password")
	}

	if newPassword == oldPassword {
		return nil, models.NewInvalidOperationError("New password must be different from old password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), BcryptCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user.Password = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
