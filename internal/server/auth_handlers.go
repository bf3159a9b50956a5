package server

import (
	"fmt"
	"strings"
	"time"

	"nexus/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Login handles POST /api/auth/login. Credentials are matched against the
// built-in directory: username case-insensitively, password verbatim.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	var found *models.Credential
	for i := range models.BuiltinUsers {
		u := &models.BuiltinUsers[i]
		if strings.EqualFold(u.Username, req.Username) && u.Password == req.Password {
			found = u
			break
		}
	}
	if found == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(found.User)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  found.User,
	})
}

// Logout handles POST /api/auth/logout. Tokens are not tracked server-side,
// so logout only acknowledges; clients drop the token.
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// generateToken creates a JWT token for the given user
func (s *Server) generateToken(user models.User) (string, error) {
	// Validate secret exists
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         user.Username,                   // Subject (username)
		"role":        string(user.Role),               // Role for admin gating
		"displayName": user.DisplayName,                // Display name (cached in token)
		"iss":         "nexus-api",                     // Issuer
		"aud":         "nexus-client",                  // Audience
		"exp":         now.Add(time.Hour * 24).Unix(),  // Expiration (24 hours)
		"iat":         now.Unix(),                      // Issued at
		"nbf":         now.Unix(),                      // Not before
		"jti":         s.generateJTI(),                 // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
