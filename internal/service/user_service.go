package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateUserInput struct {
	Actor  Actor
	UserID string
	Name   *string
	Email  *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(ctx context.Context, actor Actor, userID string) (*models.User, error) {
	if !actor.CanModify(userID) {
		return nil, models.NewForbiddenError("You can only view your own account")
	}
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateUser changes the caller's own profile. Admins cannot edit other
// accounts through this path, only read and delete them.
func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	if in.Actor.ID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own account")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actor Actor, userID string) error {
	if !actor.CanModify(userID) {
		return models.NewForbiddenError("You can only delete your own account")
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, q repository.ListUsersQuery) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, q)
}
