// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
// @Summary List categories
// @Description Retrieve all categories with their post counts, sorted by name
// @Tags categories
// @Produce json
// @Success 200 {object} object{message=string,data=[]models.Category}
// @Router /categories [get]
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.ListCategories(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// GetCategory handles GET /api/categories/:id
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} object{message=string,data=models.Category}
// @Failure 404 {object} object{message=string}
// @Router /categories/{id} [get]
func (s *Server) GetCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.categoryService.GetCategory(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory handles POST /api/categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body object{name=string} true "Category"
// @Success 201 {object} object{message=string,data=models.Category}
// @Failure 400 {object} object{message=string,errors=object}
// @Failure 409 {object} object{message=string}
// @Security BearerAuth
// @Router /categories [post]
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required,min=2,max=50"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, err)
	}

	category, err := s.categoryService.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "Category created successfully", category)
}

// UpdateCategory handles PUT /api/categories/:id
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body object{name=string} true "Category"
// @Success 200 {object} object{message=string,data=models.Category}
// @Failure 404 {object} object{message=string}
// @Failure 409 {object} object{message=string}
// @Security BearerAuth
// @Router /categories/{id} [put]
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name" validate:"required,min=2,max=50"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if validateErr := validation.Struct(req); validateErr != nil {
		return models.RespondWithError(c, validateErr)
	}

	category, err := s.categoryService.UpdateCategory(c.Context(), id, req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a category
// @Description Delete a category; fails while posts still use it
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryService.DeleteCategory(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Category deleted successfully", nil)
}
