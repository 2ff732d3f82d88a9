package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ListPostsQuery carries the public post-listing filters.
type ListPostsQuery struct {
	Search     string
	Category   string
	CategoryID string
	AuthorID   string
	Published  *bool
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, q ListPostsQuery) ([]models.Post, int64, error)
	Update(ctx context.Context, post *models.Post) error
	ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Post with this title already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetBySlug returns (nil, nil) when no post has the given slug.
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) getOne(ctx context.Context, query string, args ...any) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&post, append([]any{query}, args...)...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, q ListPostsQuery) ([]models.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Post{})

	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		base = base.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?", like, like)
	}
	if q.Category != "" {
		base = base.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.name_key = ?", strings.ToLower(q.Category))
	}
	if q.CategoryID != "" {
		base = base.Where("posts.category_id = ?", q.CategoryID)
	}
	if q.AuthorID != "" {
		base = base.Where("posts.author_id = ?", q.AuthorID)
	}
	if q.Published != nil {
		base = base.Where("posts.published = ?", *q.Published)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []models.Post
	err := base.
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order(postOrderClause(q.SortBy, q.SortOrder)).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func postOrderClause(sortBy, sortOrder string) string {
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	switch sortBy {
	case "title":
		return "posts.title " + direction
	case "updatedAt":
		return "posts.updated_at " + direction
	default:
		return "posts.created_at " + direction
	}
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).
		Omit("Author", "Category", "Tags", "Comments").
		Save(post).Error
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("Post with this title already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).Model(post).Association("Tags").Replace(tags); err != nil {
		return models.NewInternalError(err)
	}
	post.Tags = tags
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post")
		}
		return models.NewInternalError(err)
	}
	return nil
}
