package server

import (
	"nexus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts with optional ?type= and ?status= filters.
// Results come back in collection order, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	kind := models.PostKind(c.Query("type"))
	status := models.ModerationStatus(c.Query("status"))

	if kind != "" && !kind.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown post type"))
	}
	if status != "" && !status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown moderation status"))
	}

	var posts []models.Post
	switch {
	case kind != "" && status != "":
		posts = make([]models.Post, 0)
		for _, p := range s.posts.ByKind(kind) {
			if p.Status == status {
				posts = append(posts, p)
			}
		}
	case kind != "":
		posts = s.posts.ByKind(kind)
	case status != "":
		posts = s.posts.ByStatus(status)
	default:
		posts = s.posts.All()
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts. The store assigns identifier, timestamp
// and the unverified status; validation happens here, before the store is
// touched.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	username := c.Locals("username").(string)

	var draft models.PostDraft
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if !draft.Kind.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown post type"))
	}
	if draft.Title == "" || draft.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and description are required"))
	}
	if draft.Price != nil && *draft.Price < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Price must be non-negative"))
	}
	draft.CreatedBy = username

	post := s.posts.Create(c.UserContext(), draft)
	return c.Status(fiber.StatusCreated).JSON(post)
}
