package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequiresAuth(t *testing.T) {
	app, _ := newTestServer(t)

	resp, err := app.Test(jsonReq(t, http.MethodPost, "/api/posts",
		map[string]any{"type": "lost-found", "title": "t", "description": "d"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreatePost(t *testing.T) {
	app, s := newTestServer(t)
	token := studentToken(t, s)

	resp, err := app.Test(withToken(jsonReq(t, http.MethodPost, "/api/posts", map[string]any{
		"type":        "lost-found",
		"title":       "Lost ID card",
		"description": "Near the mess",
		"subType":     "lost",
		"location":    "Mess",
	}), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.StatusUnverified, post.Status)
	assert.Equal(t, models.KindLostFound, post.Kind)
	assert.Equal(t, "Student01", post.CreatedBy)
	assert.NotEmpty(t, post.CreatedAt)
}

func TestCreatePostValidation(t *testing.T) {
	app, s := newTestServer(t)
	token := studentToken(t, s)

	negative := -10.0
	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown type", map[string]any{"type": "announcement", "title": "t", "description": "d"}},
		{"missing type", map[string]any{"title": "t", "description": "d"}},
		{"missing title", map[string]any{"type": "marketplace", "description": "d"}},
		{"missing description", map[string]any{"type": "marketplace", "title": "t"}},
		{"negative price", map[string]any{"type": "marketplace", "title": "t", "description": "d", "price": negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(withToken(jsonReq(t, http.MethodPost, "/api/posts", tt.body), token))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetPostsIsPublic(t *testing.T) {
	app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var posts []models.Post
	decodeBody(t, resp, &posts)
	assert.Empty(t, posts)
}

func TestGetPostsFilters(t *testing.T) {
	app, s := newTestServer(t)
	ctx := context.Background()

	lost := s.posts.Create(ctx, models.PostDraft{Kind: models.KindLostFound, Title: "lost", Description: "d", CreatedBy: "Student01"})
	s.posts.Create(ctx, models.PostDraft{Kind: models.KindMarketplace, Title: "sale", Description: "d", CreatedBy: "Student01"})
	s.posts.SetStatus(ctx, lost.ID, models.StatusVerified)

	tests := []struct {
		name      string
		target    string
		wantTitle []string
	}{
		{"all", "/api/posts", []string{"sale", "lost"}},
		{"by type", "/api/posts?type=lost-found", []string{"lost"}},
		{"by status", "/api/posts?status=verified", []string{"lost"}},
		{"by type and status", "/api/posts?type=marketplace&status=unverified", []string{"sale"}},
		{"type and status mismatch", "/api/posts?type=marketplace&status=verified", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var posts []models.Post
			decodeBody(t, resp, &posts)
			titles := make([]string, 0, len(posts))
			for _, p := range posts {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.wantTitle, titles)
		})
	}
}

func TestGetPostsRejectsUnknownFilters(t *testing.T) {
	app, _ := newTestServer(t)

	for _, target := range []string{"/api/posts?type=bogus", "/api/posts?status=bogus"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}
