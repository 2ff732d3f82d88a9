package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/hashnode"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, string) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, string) error
	listFn       func(context.Context, repository.ListUsersQuery) ([]models.User, int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, q repository.ListUsersQuery) ([]models.User, int64, error) {
	return s.listFn(ctx, q)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id string) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
		listFn: func(_ context.Context, _ repository.ListUsersQuery) ([]models.User, int64, error) {
			return nil, 0, nil
		},
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, string) (*models.Post, error)
	getBySlugFn   func(context.Context, string) (*models.Post, error)
	listFn        func(context.Context, repository.ListPostsQuery) ([]models.Post, int64, error)
	updateFn      func(context.Context, *models.Post) error
	replaceTagsFn func(context.Context, *models.Post, []models.Tag) error
	deleteFn      func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) List(ctx context.Context, q repository.ListPostsQuery) ([]models.Post, int64, error) {
	return s.listFn(ctx, q)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) ReplaceTags(ctx context.Context, post *models.Post, tags []models.Tag) error {
	return s.replaceTagsFn(ctx, post, tags)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:    func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:   func(_ context.Context, id string) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Post, error) { return nil, nil },
		listFn: func(_ context.Context, _ repository.ListPostsQuery) ([]models.Post, int64, error) {
			return nil, 0, nil
		},
		updateFn:      func(_ context.Context, _ *models.Post) error { return nil },
		replaceTagsFn: func(_ context.Context, _ *models.Post, _ []models.Tag) error { return nil },
		deleteFn:      func(_ context.Context, _ string) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn       func(context.Context) ([]models.Category, error)
	getByIDFn    func(context.Context, string) (*models.Category, error)
	findByNameFn func(context.Context, string, string) (*models.Category, error)
	createFn     func(context.Context, *models.Category) error
	updateFn     func(context.Context, *models.Category) error
	deleteFn     func(context.Context, string) error
	countPostsFn func(context.Context, string) (int64, error)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) FindByName(ctx context.Context, name, excludeID string) (*models.Category, error) {
	return s.findByNameFn(ctx, name, excludeID)
}
func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *categoryRepoStub) CountPosts(ctx context.Context, id string) (int64, error) {
	return s.countPostsFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id string) (*models.Category, error) {
			return &models.Category{ID: id}, nil
		},
		findByNameFn: func(_ context.Context, _, _ string) (*models.Category, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.Category) error { return nil },
		updateFn:     func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
		countPostsFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	listFn       func(context.Context) ([]models.Tag, error)
	getByIDFn    func(context.Context, string) (*models.Tag, error)
	getByIDsFn   func(context.Context, []string) ([]models.Tag, error)
	findByNameFn func(context.Context, string, string) (*models.Tag, error)
	createFn     func(context.Context, *models.Tag) error
	updateFn     func(context.Context, *models.Tag) error
	deleteFn     func(context.Context, string) error
	countPostsFn func(context.Context, string) (int64, error)
}

func (s *tagRepoStub) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}
func (s *tagRepoStub) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tagRepoStub) GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *tagRepoStub) FindByName(ctx context.Context, name, excludeID string) (*models.Tag, error) {
	return s.findByNameFn(ctx, name, excludeID)
}
func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}
func (s *tagRepoStub) Update(ctx context.Context, tag *models.Tag) error {
	return s.updateFn(ctx, tag)
}
func (s *tagRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *tagRepoStub) CountPosts(ctx context.Context, id string) (int64, error) {
	return s.countPostsFn(ctx, id)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		listFn:    func(_ context.Context) ([]models.Tag, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id string) (*models.Tag, error) { return &models.Tag{ID: id}, nil },
		getByIDsFn: func(_ context.Context, ids []string) ([]models.Tag, error) {
			tags := make([]models.Tag, 0, len(ids))
			for _, id := range ids {
				tags = append(tags, models.Tag{ID: id})
			}
			return tags, nil
		},
		findByNameFn: func(_ context.Context, _, _ string) (*models.Tag, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.Tag) error { return nil },
		updateFn:     func(_ context.Context, _ *models.Tag) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
		countPostsFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, string) (*models.Comment, error)
	listByPostFn func(context.Context, string) ([]models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, string) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ string) ([]models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ string) error { return nil },
	}
}

// publisherStub is a stub for the Publisher interface.
type publisherStub struct {
	publicationsFn       func(context.Context) ([]hashnode.Publication, error)
	defaultPublicationFn func(context.Context) (string, error)
	publishPostFn        func(context.Context, string, string, string) (*hashnode.PublishedPost, error)
}

func (s *publisherStub) Publications(ctx context.Context) ([]hashnode.Publication, error) {
	return s.publicationsFn(ctx)
}
func (s *publisherStub) DefaultPublication(ctx context.Context) (string, error) {
	return s.defaultPublicationFn(ctx)
}
func (s *publisherStub) PublishPost(ctx context.Context, publicationID, title, contentMarkdown string) (*hashnode.PublishedPost, error) {
	return s.publishPostFn(ctx, publicationID, title, contentMarkdown)
}

// requireCode asserts that err is an AppError with the given code.
func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}
