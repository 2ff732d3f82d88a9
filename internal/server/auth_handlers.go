// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
// @Summary User registration
// @Description Register a new user account and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "Registration request"
// @Success 201 {object} object{message=string,data=object}
// @Failure 400 {object} object{message=string,errors=object}
// @Failure 409 {object} object{message=string}
// @Router /auth/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name" validate:"required,min=2,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, err)
	}

	user, pair, err := s.authService.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"user":         user.Public(),
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

// Login handles POST /api/auth/login
// @Summary User login
// @Description Authenticate a user and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{message=string,data=object}
// @Failure 400 {object} object{message=string}
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, err)
	}

	user, pair, err := s.authService.Login(c.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":         user.Public(),
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh token pair
// @Description Exchange a refresh token for a new access/refresh pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{refreshToken=string} true "Refresh request"
// @Success 200 {object} object{message=string,data=object}
// @Failure 403 {object} object{message=string}
// @Router /auth/refresh [post]
func (s *Server) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, err)
	}

	pair, err := s.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Token refreshed successfully", fiber.Map{
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

// Logout handles POST /api/auth/logout
// @Summary User logout
// @Description Logout; token discard is the client's responsibility
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, "Logged out successfully", nil)
}

// ChangePassword handles PUT /api/users/:id/password
// @Summary Change password
// @Description Change the authenticated user's password
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body object{currentPassword=string,newPassword=string} true "Password change request"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Security BearerAuth
// @Router /users/{id}/password [put]
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if actor(c).ID != userID {
		return models.RespondWithError(c, models.NewForbiddenError("You can only change your own password"))
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if validateErr := validation.Struct(req); validateErr != nil {
		return models.RespondWithError(c, validateErr)
	}

	if err := s.authService.ChangePassword(c.Context(), service.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Password changed successfully", nil)
}
