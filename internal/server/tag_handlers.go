// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags
// @Summary List tags
// @Description Retrieve all tags with their post counts, sorted by name
// @Tags tags
// @Produce json
// @Success 200 {object} object{message=string,data=[]models.Tag}
// @Router /tags [get]
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Tags retrieved successfully", tags)
}

// GetTag handles GET /api/tags/:id
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} object{message=string,data=models.Tag}
// @Failure 404 {object} object{message=string}
// @Router /tags/{id} [get]
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagService.GetTag(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Tag retrieved successfully", tag)
}

// CreateTag handles POST /api/tags
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param request body object{name=string} true "Tag"
// @Success 201 {object} object{message=string,data=models.Tag}
// @Failure 400 {object} object{message=string,errors=object}
// @Failure 409 {object} object{message=string}
// @Security BearerAuth
// @Router /tags [post]
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required,min=2,max=50"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, err)
	}

	tag, err := s.tagService.CreateTag(c.Context(), req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "Tag created successfully", tag)
}

// UpdateTag handles PUT /api/tags/:id
// @Summary Rename a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param request body object{name=string} true "Tag"
// @Success 200 {object} object{message=string,data=models.Tag}
// @Failure 404 {object} object{message=string}
// @Failure 409 {object} object{message=string}
// @Security BearerAuth
// @Router /tags/{id} [put]
func (s *Server) UpdateTag(c *fiber.Ctx) error {
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

	tag, err := s.tagService.UpdateTag(c.Context(), id, req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Tag updated successfully", tag)
}

// DeleteTag handles DELETE /api/tags/:id
// @Summary Delete a tag
// @Description Delete a tag; fails while posts still use it
// @Tags tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.DeleteTag(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Tag deleted successfully", nil)
}
