package service

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/hashnode"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// Publisher is the external publishing surface PublishService depends on.
// hashnode.Client satisfies it.
type Publisher interface {
	Publications(ctx context.Context) ([]hashnode.Publication, error)
	DefaultPublication(ctx context.Context) (string, error)
	PublishPost(ctx context.Context, publicationID, title, contentMarkdown string) (*hashnode.PublishedPost, error)
}

type PublishService struct {
	postRepo  repository.PostRepository
	publisher Publisher
}

func NewPublishService(postRepo repository.PostRepository, publisher Publisher) *PublishService {
	return &PublishService{postRepo: postRepo, publisher: publisher}
}

// PublishToHashnode pushes a post to the configured Hashnode publication
// and records the remote ID and URL on the post. Only the post's author
// may publish it; admins cannot publish on an author's behalf.
func (s *PublishService) PublishToHashnode(ctx context.Context, actor Actor, postID string) (*models.Post, error) {
	if s.publisher == nil {
		return nil, models.NewStateError("Hashnode publishing is not configured")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID {
		return nil, models.NewForbiddenError("You can only publish your own posts")
	}
	if post.PublishedOnHashnode {
		return nil, models.NewStateError("Post is already published on Hashnode")
	}

	publicationID, err := s.publisher.DefaultPublication(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	published, err := s.publisher.PublishPost(ctx, publicationID, post.Title, post.Content)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	post.HashnodeID = published.ID
	post.HashnodeURL = published.URL
	post.PublishedOnHashnode = true
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidatePost(ctx, post.ID)
	return post, nil
}

// ListPublications proxies the Hashnode publications query for the
// authenticated user's API key.
func (s *PublishService) ListPublications(ctx context.Context) ([]hashnode.Publication, error) {
	if s.publisher == nil {
		return nil, models.NewStateError("Hashnode publishing is not configured")
	}

	publications, err := s.publisher.Publications(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return publications, nil
}
