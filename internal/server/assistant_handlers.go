package server

import (
	"errors"

	"nexus/internal/models"
	"nexus/internal/relay"

	"github.com/gofiber/fiber/v2"
)

// Assistant handles POST /api/assistant. It forwards the typed request to the
// AI relay and flattens the discriminated result back onto the portal's wire
// contract: summarize replies carry summary+category, study and moderate
// replies carry response.
func (s *Server) Assistant(c *fiber.Ctx) error {
	var req struct {
		Type     string              `json:"type"`
		Content  string              `json:"content"`
		Messages []relay.ChatMessage `json:"messages"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.assistant.Invoke(c.UserContext(), relay.Request{
		Kind:     relay.Kind(req.Type),
		Content:  req.Content,
		Messages: req.Messages,
	})
	if err != nil {
		return s.respondAssistantError(c, err)
	}

	switch r := result.(type) {
	case relay.SummarizeResult:
		return c.JSON(fiber.Map{
			"summary":  r.Summary,
			"category": r.Category,
		})
	case relay.StudyResult:
		return c.JSON(fiber.Map{"response": r.Response})
	case relay.ModerateResult:
		return c.JSON(fiber.Map{"response": r.Response})
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(errors.New("unexpected relay result")))
	}
}

// respondAssistantError maps the relay failure taxonomy onto the portal's
// status contract: 429 for rate limiting, 402 for exhausted credits, 500 for
// everything else (including an unknown request type, matching the original
// gateway behavior). Nothing is retried.
func (s *Server) respondAssistantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, relay.ErrRateLimited):
		return models.RespondWithError(c, fiber.StatusTooManyRequests, err)
	case errors.Is(err, relay.ErrQuotaExhausted):
		return models.RespondWithError(c, fiber.StatusPaymentRequired, err)
	case errors.Is(err, relay.ErrInvalidRequestKind):
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewValidationError(err.Error()))
	case errors.Is(err, relay.ErrMissingCredential):
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewConfigurationError(err.Error()))
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
}
