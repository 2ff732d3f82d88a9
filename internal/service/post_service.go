package service

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type PostService struct {
	postRepo         repository.PostRepository
	categoryRepo     repository.CategoryRepository
	tagRepo          repository.TagRepository
	commentRepo      repository.CommentRepository
	defaultPublished bool
}

type CreatePostInput struct {
	Actor        Actor
	Title        string
	Content      string
	Published    *bool
	ThumbnailURL string
	CategoryID   string
	TagIDs       []string
}

type UpdatePostInput struct {
	Actor        Actor
	PostID       string
	Title        *string
	Content      *string
	Published    *bool
	ThumbnailURL *string
	CategoryID   *string
	TagIDs       []string
	HasTagIDs    bool
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	commentRepo repository.CommentRepository,
	defaultPublished bool,
) *PostService {
	return &PostService{
		postRepo:         postRepo,
		categoryRepo:     categoryRepo,
		tagRepo:          tagRepo,
		commentRepo:      commentRepo,
		defaultPublished: defaultPublished,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	slug := validation.Slugify(in.Title)
	if slug == "" {
		return nil, models.NewValidationError("Title must contain at least one letter or digit")
	}

	existing, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Post with this title already exists")
	}

	post := &models.Post{
		Title:        in.Title,
		Slug:         slug,
		Content:      in.Content,
		Published:    s.defaultPublished,
		ThumbnailURL: in.ThumbnailURL,
		AuthorID:     in.Actor.ID,
	}
	if in.Published != nil {
		post.Published = *in.Published
	}

	if in.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
			return nil, models.NewNotFoundError("Category or tag")
		}
		post.CategoryID = &in.CategoryID
	}

	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}
	post.Tags = tags

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// resolveTags loads every requested tag and fails if any ID is unknown.
func (s *PostService) resolveTags(ctx context.Context, tagIDs []string) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, models.NewNotFoundError("Category or tag")
	}
	return tags, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		p, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		comments, err := s.commentRepo.ListByPost(ctx, id)
		if err != nil {
			return err
		}
		p.Comments = buildCommentTree(comments)
		post = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) ListPosts(ctx context.Context, q repository.ListPostsQuery) ([]models.Post, int64, error) {
	return s.postRepo.List(ctx, q)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.CanModify(post.AuthorID) {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != nil && *in.Title != post.Title {
		slug := validation.Slugify(*in.Title)
		if slug == "" {
			return nil, models.NewValidationError("Title must contain at least one letter or digit")
		}
		existing, err := s.postRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != post.ID {
			return nil, models.NewConflictError("Post with this title already exists")
		}
		post.Title = *in.Title
		post.Slug = slug
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if in.ThumbnailURL != nil {
		post.ThumbnailURL = *in.ThumbnailURL
	}
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			post.CategoryID = nil
			post.Category = nil
		} else {
			if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
				return nil, models.NewNotFoundError("Category or tag")
			}
			post.CategoryID = in.CategoryID
		}
	}

	// Resolve tags before touching the row so a bad tag ID rejects the
	// whole update instead of leaving a half-applied post behind.
	var tags []models.Tag
	if in.HasTagIDs {
		tags, err = s.resolveTags(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	if in.HasTagIDs {
		if err := s.postRepo.ReplaceTags(ctx, post, tags); err != nil {
			return nil, err
		}
	}

	cache.InvalidatePost(ctx, post.ID)
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, actor Actor, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !actor.CanModify(post.AuthorID) {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
