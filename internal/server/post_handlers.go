// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultPostPageLimit = 6

// GetPosts handles GET /api/posts
// @Summary List posts
// @Description Browse posts with search, filter, sort and pagination
// @Tags posts
// @Produce json
// @Param search query string false "Search in title and content"
// @Param category query string false "Filter by category name"
// @Param categoryId query string false "Filter by category ID"
// @Param authorId query string false "Filter by author ID"
// @Param published query bool false "Filter by published state"
// @Param sortBy query string false "Sort field: createdAt, updatedAt, title"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{message=string,data=[]models.Post,pagination=object}
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPostPageLimit)

	q := repository.ListPostsQuery{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		CategoryID: c.Query("categoryId"),
		AuthorID:   c.Query("authorId"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if raw := c.Query("published"); raw != "" {
		published := raw == "true"
		q.Published = &published
	}

	posts, total, err := s.postService.ListPosts(c.Context(), q)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondPage(c, "Posts retrieved successfully", posts, total, page)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post
// @Description Retrieve a single post with author, category, tags and comments
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} object{message=string,data=models.Post}
// @Failure 404 {object} object{message=string}
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Post retrieved successfully", post)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Create a new post owned by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{title=string,content=string,published=bool,thumbnailUrl=string,categoryId=string,tagIds=[]string} true "Post"
// @Success 201 {object} object{message=string,data=models.Post}
// @Failure 400 {object} object{message=string,errors=object}
// @Failure 404 {object} object{message=string}
// @Failure 409 {object} object{message=string}
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title        string   `json:"title" validate:"required,min=3,max=200"`
		Content      string   `json:"content" validate:"required"`
		Published    *bool    `json:"published"`
		ThumbnailURL string   `json:"thumbnailUrl" validate:"omitempty,url"`
		CategoryID   string   `json:"categoryId" validate:"omitempty,uuid"`
		TagIDs       []string `json:"tagIds" validate:"omitempty,dive,uuid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Actor:        actor(c),
		Title:        req.Title,
		Content:      req.Content,
		Published:    req.Published,
		ThumbnailURL: req.ThumbnailURL,
		CategoryID:   req.CategoryID,
		TagIDs:       req.TagIDs,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusCreated, "Post created successfully", post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Description Update a post; only the owner or an admin may update
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body object{title=string,content=string,published=bool,thumbnailUrl=string,categoryId=string,tagIds=[]string} true "Post fields"
// @Success 200 {object} object{message=string,data=models.Post}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Failure 409 {object} object{message=string}
// @Security BearerAuth
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title        *string  `json:"title" validate:"omitempty,min=3,max=200"`
		Content      *string  `json:"content"`
		Published    *bool    `json:"published"`
		ThumbnailURL *string  `json:"thumbnailUrl" validate:"omitempty,url"`
		CategoryID   *string  `json:"categoryId" validate:"omitempty,uuid"`
		TagIDs       []string `json:"tagIds" validate:"omitempty,dive,uuid"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if validateErr := validation.Struct(req); validateErr != nil {
		return models.RespondWithError(c, validateErr)
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		Actor:        actor(c),
		PostID:       postID,
		Title:        req.Title,
		Content:      req.Content,
		Published:    req.Published,
		ThumbnailURL: req.ThumbnailURL,
		CategoryID:   req.CategoryID,
		TagIDs:       req.TagIDs,
		HasTagIDs:    req.TagIDs != nil,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Post updated successfully", post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Delete a post; only the owner or an admin may delete
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), actor(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Post deleted successfully", nil)
}

// GetAdminPosts handles GET /api/admin/posts
// @Summary List all posts (admin)
// @Description Browse every post including unpublished drafts
// @Tags admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{message=string,data=[]models.Post,pagination=object}
// @Security BearerAuth
// @Router /admin/posts [get]
func (s *Server) GetAdminPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	q := repository.ListPostsQuery{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		CategoryID: c.Query("categoryId"),
		AuthorID:   c.Query("authorId"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if raw := c.Query("published"); raw != "" {
		published := raw == "true"
		q.Published = &published
	}

	posts, total, err := s.postService.ListPosts(c.Context(), q)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondPage(c, "Posts retrieved successfully", posts, total, page)
}

// PublishToHashnode handles POST /api/posts/:id/publish
// @Summary Publish a post to Hashnode
// @Description Push the post to the configured Hashnode publication
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} object{message=string,data=models.Post}
// @Failure 400 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Security BearerAuth
// @Router /posts/{id}/publish [post]
func (s *Server) PublishToHashnode(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.publishService.PublishToHashnode(c.Context(), actor(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Post published to Hashnode successfully", post)
}

// GetHashnodePublications handles GET /api/hashnode/publications
// @Summary List Hashnode publications
// @Description List the publications behind the configured Hashnode API key
// @Tags posts
// @Produce json
// @Success 200 {object} object{message=string,data=[]hashnode.Publication}
// @Failure 400 {object} object{message=string}
// @Security BearerAuth
// @Router /hashnode/publications [get]
func (s *Server) GetHashnodePublications(c *fiber.Ctx) error {
	publications, err := s.publishService.ListPublications(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Publications retrieved successfully", publications)
}
