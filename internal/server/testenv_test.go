package server

import (
	"context"
	"strings"
	"sync"

	"inkwell/internal/config"
	"inkwell/internal/hashnode"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// memStore is a shared in-memory backing store for the fake repositories.
type memStore struct {
	mu         sync.Mutex
	users      map[string]*models.User
	posts      map[string]*models.Post
	categories map[string]*models.Category
	tags       map[string]*models.Tag
	comments   map[string]*models.Comment

	// userErr, when set, is returned by user ID lookups to simulate a
	// failing database.
	userErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[string]*models.User{},
		posts:      map[string]*models.Post{},
		categories: map[string]*models.Category{},
		tags:       map[string]*models.Tag{},
		comments:   map[string]*models.Comment{},
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.userErr != nil {
		return nil, r.s.userErr
	}
	if u, ok := r.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, models.NewNotFoundError("User")
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return models.NewConflictError("Email already exists")
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return models.NewNotFoundError("User")
	}
	delete(r.s.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, _ repository.ListUsersQuery) ([]models.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, *u)
	}
	return users, int64(len(users)), nil
}

type memPostRepo struct{ s *memStore }

func (r *memPostRepo) Create(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	copied := *post
	r.s.posts[post.ID] = &copied
	return nil
}

func (r *memPostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, models.NewNotFoundError("Post")
}

func (r *memPostRepo) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memPostRepo) List(_ context.Context, q repository.ListPostsQuery) ([]models.Post, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	posts := make([]models.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		if q.Published != nil && p.Published != *q.Published {
			continue
		}
		posts = append(posts, *p)
	}
	return posts, int64(len(posts)), nil
}

func (r *memPostRepo) Update(_ context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *post
	r.s.posts[post.ID] = &copied
	return nil
}

func (r *memPostRepo) ReplaceTags(_ context.Context, post *models.Post, tags []models.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.posts[post.ID]; ok {
		p.Tags = tags
	}
	post.Tags = tags
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return models.NewNotFoundError("Post")
	}
	delete(r.s.posts, id)
	return nil
}

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	categories := make([]models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, models.NewNotFoundError("Category")
}

func (r *memCategoryRepo) FindByName(_ context.Context, name, excludeID string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range r.s.categories {
		if strings.ToLower(c.Name) == key && c.ID != excludeID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	copied := *category
	r.s.categories[category.ID] = &copied
	return nil
}

func (r *memCategoryRepo) Update(_ context.Context, category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *category
	r.s.categories[category.ID] = &copied
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return models.NewNotFoundError("Category")
	}
	delete(r.s.categories, id)
	return nil
}

func (r *memCategoryRepo) CountPosts(_ context.Context, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, p := range r.s.posts {
		if p.CategoryID != nil && *p.CategoryID == id {
			count++
		}
	}
	return count, nil
}

type memTagRepo struct{ s *memStore }

func (r *memTagRepo) List(_ context.Context) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tags := make([]models.Tag, 0, len(r.s.tags))
	for _, tag := range r.s.tags {
		tags = append(tags, *tag)
	}
	return tags, nil
}

func (r *memTagRepo) GetByID(_ context.Context, id string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tag, ok := r.s.tags[id]; ok {
		copied := *tag
		return &copied, nil
	}
	return nil, models.NewNotFoundError("Tag")
}

func (r *memTagRepo) GetByIDs(_ context.Context, ids []string) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var tags []models.Tag
	for _, id := range ids {
		if tag, ok := r.s.tags[id]; ok {
			tags = append(tags, *tag)
		}
	}
	return tags, nil
}

func (r *memTagRepo) FindByName(_ context.Context, name, excludeID string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(name))
	for _, tag := range r.s.tags {
		if strings.ToLower(tag.Name) == key && tag.ID != excludeID {
			copied := *tag
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memTagRepo) Create(_ context.Context, tag *models.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	copied := *tag
	r.s.tags[tag.ID] = &copied
	return nil
}

func (r *memTagRepo) Update(_ context.Context, tag *models.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *tag
	r.s.tags[tag.ID] = &copied
	return nil
}

func (r *memTagRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tags[id]; !ok {
		return models.NewNotFoundError("Tag")
	}
	delete(r.s.tags, id)
	return nil
}

func (r *memTagRepo) CountPosts(_ context.Context, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, p := range r.s.posts {
		for _, tag := range p.Tags {
			if tag.ID == id {
				count++
			}
		}
	}
	return count, nil
}

type memCommentRepo struct{ s *memStore }

func (r *memCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	copied := *comment
	r.s.comments[comment.ID] = &copied
	return nil
}

func (r *memCommentRepo) GetByID(_ context.Context, id string) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, models.NewNotFoundError("Comment")
}

func (r *memCommentRepo) ListByPost(_ context.Context, postID string) ([]models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var comments []models.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (r *memCommentRepo) Update(_ context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.comments[comment.ID]; ok {
		c.Content = comment.Content
	}
	return nil
}

func (r *memCommentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return models.NewNotFoundError("Comment")
	}
	delete(r.s.comments, id)
	return nil
}

// testEnv bundles a fully wired Server over in-memory repositories with a
// Fiber app carrying the real route table.
type testEnv struct {
	app    *fiber.App
	srv    *Server
	store  *memStore
	tokens *token.Manager
}

func newTestEnv() *testEnv {
	store := newMemStore()
	cfg := &config.Config{
		Env:              "test",
		JWTAccessSecret:  "test-access-secret",
		JWTRefreshSecret: "test-refresh-secret",
		DefaultPublished: true,
	}

	tokens := token.NewManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	userRepo := &memUserRepo{s: store}
	postRepo := &memPostRepo{s: store}
	categoryRepo := &memCategoryRepo{s: store}
	tagRepo := &memTagRepo{s: store}
	commentRepo := &memCommentRepo{s: store}

	srv := &Server{
		config:          cfg,
		tokens:          tokens,
		userRepo:        userRepo,
		postRepo:        postRepo,
		categoryRepo:    categoryRepo,
		tagRepo:         tagRepo,
		commentRepo:     commentRepo,
		authService:     service.NewAuthService(userRepo, tokens),
		userService:     service.NewUserService(userRepo),
		postService:     service.NewPostService(postRepo, categoryRepo, tagRepo, commentRepo, cfg.DefaultPublished),
		commentService:  service.NewCommentService(commentRepo, postRepo),
		categoryService: service.NewCategoryService(categoryRepo),
		tagService:      service.NewTagService(tagRepo),
		publishService:  service.NewPublishService(postRepo, nil),
	}

	app := fiber.New()
	srv.SetupRoutes(app)

	return &testEnv{app: app, srv: srv, store: store, tokens: tokens}
}

// withPublisher swaps in a publisher for the Hashnode path.
func (e *testEnv) withPublisher(p service.Publisher) {
	e.srv.publishService = service.NewPublishService(&memPostRepo{s: e.store}, p)
}

// addUser seeds a user and returns it with a valid access token.
func (e *testEnv) addUser(name, email, role string) (*models.User, string) {
	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: "$2a$04$invalidhashforloginpaths0000000000000000000000000000",
		Role:     role,
	}
	e.store.mu.Lock()
	e.store.users[user.ID] = user
	e.store.mu.Unlock()

	pair, err := e.tokens.Issue(user.ID)
	if err != nil {
		panic(err)
	}
	return user, pair.Access
}

// addPost seeds a post owned by authorID.
func (e *testEnv) addPost(authorID, title, slug string) *models.Post {
	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Slug:      slug,
		Content:   "content",
		Published: true,
		AuthorID:  authorID,
	}
	e.store.mu.Lock()
	e.store.posts[post.ID] = post
	e.store.mu.Unlock()
	return post
}

// fakePublisher implements service.Publisher for handler tests.
type fakePublisher struct{}

func (fakePublisher) Publications(context.Context) ([]hashnode.Publication, error) {
	return []hashnode.Publication{{ID: "pub-1", Title: "Blog", URL: "https://blog.example.com"}}, nil
}
func (fakePublisher) DefaultPublication(context.Context) (string, error) { return "pub-1", nil }
func (fakePublisher) PublishPost(_ context.Context, _, _, _ string) (*hashnode.PublishedPost, error) {
	return &hashnode.PublishedPost{ID: "hn-1", URL: "https://blog.example.com/p"}, nil
}
