// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users (admin only)
// @Summary List users
// @Description Browse users with search, filters, sorting and pagination
// @Tags users
// @Produce json
// @Param search query string false "Search in name and email"
// @Param role query string false "Filter by role: USER or ADMIN"
// @Param hasPosts query bool false "Filter by whether the user has posts"
// @Param createdFrom query string false "Created on or after (RFC 3339 or YYYY-MM-DD)"
// @Param createdTo query string false "Created on or before, inclusive of the whole day (RFC 3339 or YYYY-MM-DD)"
// @Param sortBy query string false "Sort field: createdAt, name, email, postsCount"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{message=string,data=[]models.User,pagination=object}
// @Security BearerAuth
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	q := repository.ListUsersQuery{
		Search:    c.Query("search"),
		Role:      c.Query("role"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if raw := c.Query("hasPosts"); raw != "" {
		hasPosts := raw == "true"
		q.HasPosts = &hasPosts
	}
	if raw := c.Query("createdFrom"); raw != "" {
		t, err := parseDateQuery(raw)
		if err != nil {
			return models.RespondWithError(c, models.NewValidationError("Invalid createdFrom date"))
		}
		q.CreatedFrom = &t
	}
	if raw := c.Query("createdTo"); raw != "" {
		t, err := parseDateQuery(raw)
		if err != nil {
			return models.RespondWithError(c, models.NewValidationError("Invalid createdTo date"))
		}
		t = endOfDay(t)
		q.CreatedTo = &t
	}

	users, total, err := s.userService.ListUsers(c.Context(), q)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return respondPage(c, "Users retrieved successfully", public, total, page)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Description Retrieve a user; callers may only view themselves unless admin
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string,data=models.PublicUser}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), actor(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "User retrieved successfully", user.Public())
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update a user
// @Description Update profile fields; users may only update themselves
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body object{name=string,email=string} true "Profile fields"
// @Success 200 {object} object{message=string,data=models.PublicUser}
// @Failure 400 {object} object{message=string,errors=object}
// @Failure 403 {object} object{message=string}
// @Security BearerAuth
// @Router /users/{id} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
		Email *string `json:"email" validate:"omitempty,email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if validateErr := validation.Struct(req); validateErr != nil {
		return models.RespondWithError(c, validateErr)
	}

	user, err := s.userService.UpdateUser(c.Context(), service.UpdateUserInput{
		Actor:  actor(c),
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "User updated successfully", user.Public())
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user
// @Description Delete an account; only the owner or an admin may delete
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), actor(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "User deleted successfully", nil)
}
