package service

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	Actor    Actor
	PostID   string
	ParentID string
	Content  string
}

type UpdateCommentInput struct {
	Actor     Actor
	CommentID string
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  in.Content,
		AuthorID: in.Actor.ID,
		PostID:   in.PostID,
	}
	if in.ParentID != "" {
		parent, err := s.commentRepo.GetByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
		comment.ParentID = &in.ParentID
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, in.PostID)
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments as a tree: top-level comments
// with their replies nested, both levels newest first.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return buildCommentTree(comments), nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.CanModify(comment.AuthorID) {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, comment.PostID)
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, actor Actor, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !actor.CanModify(comment.AuthorID) {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

// buildCommentTree nests replies under their parents, preserving the
// newest-first order of the flat input at both levels.
func buildCommentTree(flat []models.Comment) []models.Comment {
	byParent := make(map[string][]models.Comment)
	for _, c := range flat {
		if c.ParentID != nil {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}

	roots := make([]models.Comment, 0, len(flat))
	for _, c := range flat {
		if c.ParentID != nil {
			continue
		}
		c.Replies = byParent[c.ID]
		roots = append(roots, c)
	}
	return roots
}
