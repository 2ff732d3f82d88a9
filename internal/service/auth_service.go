package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/token"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, token.Pair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, token.Pair{}, err
	}
	if existing != nil {
		return nil, token.Pair{}, models.NewConflictError("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, token.Pair{}, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, token.Pair{}, err
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, token.Pair{}, models.NewInternalError(err)
	}
	return user, pair, nil
}

// Login responds to a bad email and a bad password identically so the
// endpoint cannot be used to probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, token.Pair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, token.Pair{}, err
	}
	if user == nil {
		return nil, token.Pair{}, models.NewValidationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, token.Pair{}, models.NewValidationError("Invalid email or password")
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, token.Pair{}, models.NewInternalError(err)
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh access/refresh pair.
// An access token is never accepted here, and vice versa.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	userID, err := s.tokens.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return token.Pair{}, models.NewForbiddenError("Invalid refresh token")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return token.Pair{}, models.NewForbiddenError("Invalid refresh token")
	}

	pair, err := s.tokens.Issue(userID)
	if err != nil {
		return token.Pair{}, models.NewInternalError(err)
	}
	return pair, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
		return models.NewValidationError("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user.Password = string(hash)
	return s.userRepo.Update(ctx, user)
}
