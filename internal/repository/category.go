package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

const categoryPostCountSelect = "categories.*, (SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id) AS post_count"

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name, excludeID string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	CountPosts(ctx context.Context, id string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Select(categoryPostCountSelect).
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Select(categoryPostCountSelect).
		First(&category, "categories.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category")
		}
		return nil, models.NewInternalError(err)
	}
	return &category, nil
}

// FindByName matches case-insensitively and returns (nil, nil) when no
// category carries the name. excludeID skips a row, for rename checks.
func (r *categoryRepository) FindByName(ctx context.Context, name, excludeID string) (*models.Category, error) {
	q := r.db.WithContext(ctx).Where("name_key = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var category models.Category
	if err := q.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Category already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Category already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Category")
	}
	return nil
}

func (r *categoryRepository) CountPosts(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("category_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
