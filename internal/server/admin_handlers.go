package server

import (
	"nexus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats handles GET /api/admin/stats
func (s *Server) GetStats(c *fiber.Ctx) error {
	return c.JSON(s.posts.Stats())
}

// GetAdminPosts handles GET /api/admin/posts. Defaults to the pending queue;
// ?status= widens it to any bucket.
func (s *Server) GetAdminPosts(c *fiber.Ctx) error {
	status := models.ModerationStatus(c.Query("status", string(models.StatusUnverified)))
	if !status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown moderation status"))
	}
	return c.JSON(s.posts.ByStatus(status))
}

// VerifyPost handles POST /api/admin/posts/:id/verify. An unknown id is a
// no-op in the store; the response is 200 either way.
func (s *Server) VerifyPost(c *fiber.Ctx) error {
	s.posts.SetStatus(c.UserContext(), c.Params("id"), models.StatusVerified)
	return c.JSON(fiber.Map{"message": "Post verified"})
}

// RejectPost handles POST /api/admin/posts/:id/reject
func (s *Server) RejectPost(c *fiber.Ctx) error {
	s.posts.SetStatus(c.UserContext(), c.Params("id"), models.StatusRejected)
	return c.JSON(fiber.Map{"message": "Post rejected"})
}
