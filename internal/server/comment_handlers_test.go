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

func TestCreateComment(t *testing.T) {
	env := newTestEnv()
	owner, ownerToken := env.addUser("Owner", "owner@example.com", "USER")
	post := env.addPost(owner.ID, "Discussed", "discussed")
	other := env.addPost(owner.ID, "Other", "other")

	t.Run("top-level comment", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/posts/"+post.ID+"/comments", map[string]any{
			"content": "First!",
		})
		req.Header.Set("Authorization", "Bearer "+ownerToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("reply to a comment on another post is rejected", func(t *testing.T) {
		// seed a comment that lives on the other post
		stray := &models.Comment{ID: uuid.NewString(), Content: "elsewhere", AuthorID: owner.ID, PostID: other.ID}
		env.store.mu.Lock()
		env.store.comments[stray.ID] = stray
		env.store.mu.Unlock()

		req := jsonRequest(http.MethodPost, "/api/posts/"+post.ID+"/comments", map[string]any{
			"content":  "reply",
			"parentId": stray.ID,
		})
		req.Header.Set("Authorization", "Bearer "+ownerToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("comment on a missing post is 404", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/posts/"+uuid.NewString()+"/comments", map[string]any{
			"content": "hello?",
		})
		req.Header.Set("Authorization", "Bearer "+ownerToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteComment_OwnerOrAdmin(t *testing.T) {
	env := newTestEnv()
	owner, ownerToken := env.addUser("Owner", "owner@example.com", "USER")
	_, strangerToken := env.addUser("Stranger", "stranger@example.com", "USER")
	_, adminToken := env.addUser("Root", "root@example.com", "ADMIN")
	post := env.addPost(owner.ID, "Discussed", "discussed")

	seedComment := func() string {
		id := uuid.NewString()
		env.store.mu.Lock()
		env.store.comments[id] = &models.Comment{ID: id, Content: "c", AuthorID: owner.ID, PostID: post.ID}
		env.store.mu.Unlock()
		return id
	}

	t.Run("stranger forbidden", func(t *testing.T) {
		id := seedComment()
		req := httptest.NewRequest(http.MethodDelete, "/api/comments/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+strangerToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner allowed", func(t *testing.T) {
		id := seedComment()
		req := httptest.NewRequest(http.MethodDelete, "/api/comments/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+ownerToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		id := seedComment()
		req := httptest.NewRequest(http.MethodDelete, "/api/comments/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
