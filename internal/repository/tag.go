package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

const tagPostCountSelect = "tags.*, (SELECT COUNT(*) FROM post_tags WHERE post_tags.tag_id = tags.id) AS post_count"

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error)
	FindByName(ctx context.Context, name, excludeID string) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id string) error
	CountPosts(ctx context.Context, id string) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Select(tagPostCountSelect).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Select(tagPostCountSelect).
		First(&tag, "tags.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag")
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

// FindByName matches case-insensitively and returns (nil, nil) when no tag
// carries the name. excludeID skips a row, for rename checks.
func (r *tagRepository) FindByName(ctx context.Context, name, excludeID string) (*models.Tag, error) {
	q := r.db.WithContext(ctx).Where("name_key = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var tag models.Tag
	if err := q.First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Tag already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Tag already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag")
	}
	return nil
}

func (r *tagRepository) CountPosts(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("post_tags").
		Where("tag_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
