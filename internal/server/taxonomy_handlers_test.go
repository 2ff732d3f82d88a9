package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	env := newTestEnv()
	user, userToken := env.addUser("Writer", "writer@example.com", "USER")
	_, adminToken := env.addUser("Root", "root@example.com", "ADMIN")

	var categoryID string

	t.Run("non-admin may not create", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/categories", map[string]any{"name": "Engineering"})
		req.Header.Set("Authorization", "Bearer "+userToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin creates", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/categories", map[string]any{"name": "Engineering"})
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]any)
		categoryID = data["id"].(string)
		assert.Equal(t, "Engineering", data["name"])
	})

	t.Run("duplicate name is rejected regardless of case", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/categories", map[string]any{"name": "engineering"})
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Category already exists", decodeBody(t, resp)["message"])
	})

	t.Run("delete is blocked while posts reference it", func(t *testing.T) {
		post := env.addPost(user.ID, "Tied", "tied")
		env.store.mu.Lock()
		env.store.posts[post.ID].CategoryID = &categoryID
		env.store.mu.Unlock()

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/"+categoryID, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Cannot delete category that is being used by posts", decodeBody(t, resp)["message"])
	})

	t.Run("delete succeeds once unused", func(t *testing.T) {
		env.store.mu.Lock()
		for _, p := range env.store.posts {
			p.CategoryID = nil
		}
		env.store.mu.Unlock()

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/"+categoryID, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestTagDeleteGuard(t *testing.T) {
	env := newTestEnv()
	user, _ := env.addUser("Writer", "writer@example.com", "USER")
	_, adminToken := env.addUser("Root", "root@example.com", "ADMIN")

	tag := models.Tag{ID: uuid.NewString(), Name: "golang"}
	post := env.addPost(user.ID, "Tagged", "tagged")
	env.store.mu.Lock()
	env.store.tags[tag.ID] = &tag
	env.store.posts[post.ID].Tags = []models.Tag{tag}
	env.store.mu.Unlock()

	req := httptest.NewRequest(http.MethodDelete, "/api/tags/"+tag.ID, nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot delete tag that is being used by posts", decodeBody(t, resp)["message"])
}

func TestPublicTaxonomyReads(t *testing.T) {
	env := newTestEnv()
	env.store.mu.Lock()
	env.store.categories["c1"] = &models.Category{ID: "c1", Name: "Engineering"}
	env.store.tags["t1"] = &models.Tag{ID: "t1", Name: "golang"}
	env.store.mu.Unlock()

	for _, path := range []string{"/api/categories", "/api/tags"} {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}
