package service

import (
	"context"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := cache.Aside(ctx, cache.CategoriesKey(), &categories, cache.ListTTL, func() error {
		var fetchErr error
		categories, fetchErr = s.categoryRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	existing, err := s.categoryRepo.FindByName(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Category already exists")
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCategories(ctx)
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	existing, err := s.categoryRepo.FindByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Category already exists")
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCategories(ctx)
	return category, nil
}

// DeleteCategory refuses to remove a category that still has posts.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountPosts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.NewStateError("Cannot delete category that is being used by posts")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCategories(ctx)
	return nil
}
