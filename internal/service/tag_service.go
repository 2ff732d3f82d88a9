package service

import (
	"context"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := cache.Aside(ctx, cache.TagsKey(), &tags, cache.ListTTL, func() error {
		var fetchErr error
		tags, fetchErr = s.tagRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) GetTag(ctx context.Context, id string) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

func (s *TagService) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)

	existing, err := s.tagRepo.FindByName(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Tag already exists")
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	cache.InvalidateTags(ctx)
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id, name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	existing, err := s.tagRepo.FindByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Tag already exists")
	}

	tag.Name = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}

	cache.InvalidateTags(ctx)
	return tag, nil
}

// DeleteTag refuses to remove a tag that is still attached to posts.
func (s *TagService) DeleteTag(ctx context.Context, id string) error {
	if _, err := s.tagRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.tagRepo.CountPosts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.NewStateError("Cannot delete tag that is being used by posts")
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateTags(ctx)
	return nil
}
