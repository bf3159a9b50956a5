package server

import (
	"nexus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTimetable handles GET /api/timetable
func (s *Server) GetTimetable(c *fiber.Ctx) error {
	return c.JSON(s.timetable.All())
}

// AddClass handles POST /api/timetable
func (s *Server) AddClass(c *fiber.Ctx) error {
	var entry models.ClassEntry
	if err := c.BodyParser(&entry); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if entry.Subject == "" || entry.Time == "" || entry.Room == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Subject, time, and room are required"))
	}
	if entry.Day == "" {
		entry.Day = "Monday"
	}
	if entry.Type == "" {
		entry.Type = models.ClassLecture
	}
	if !entry.Type.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown class type"))
	}

	created := s.timetable.Add(c.UserContext(), entry)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteClass handles DELETE /api/timetable/:id. Unknown ids are ignored.
func (s *Server) DeleteClass(c *fiber.Ctx) error {
	s.timetable.Remove(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
