// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/posts/:id/comments
// @Summary List comments on a post
// @Description Retrieve the post's comments as a reply tree, newest first
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} object{message=string,data=[]models.Comment}
// @Failure 404 {object} object{message=string}
// @Router /posts/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Comments retrieved successfully", comments)
}

// CreateComment handles POST /api/posts/:id/comments
// @Summary Create a comment
// @Description Comment on a post, optionally replying to an existing comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body object{content=string,parentId=string} true "Comment"
// @Success 201 {object} object{message=string,data=models.Comment}
// @Failure 400 {object} object{message=string,errors=object}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /posts/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content  string `json:"content" validate:"required,max=10000"`
		ParentID string `json:"parentId" validate:"omitempty,uuid"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if validateErr := validation.Struct(req); validateErr != nil {
		return models.RespondWithError(c, validateErr)
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		Actor:    actor(c),
		PostID:   postID,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusCreated, "Comment created successfully", comment)
}

// UpdateComment handles PUT /api/comments/:id
// @Summary Update a comment
// @Description Update a comment; only the owner or an admin may update
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param request body object{content=string} true "Comment"
// @Success 200 {object} object{message=string,data=models.Comment}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content" validate:"required,max=10000"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if validateErr := validation.Struct(req); validateErr != nil {
		return models.RespondWithError(c, validateErr)
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		Actor:     actor(c),
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete a comment
// @Description Delete a comment and its replies; only the owner or an admin may delete
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), actor(c), commentID); err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Comment deleted successfully", nil)
}
