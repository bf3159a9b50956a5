package server

import (
	"nexus/internal/campus"
	"nexus/internal/middleware"
	"nexus/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMessMenu handles GET /api/campus/menu. With ?day= it returns one day's
// meals; without, the whole week keyed by day.
func (s *Server) GetMessMenu(c *fiber.Ctx) error {
	if day := c.Query("day"); day != "" {
		return c.JSON(fiber.Map{
			"day":   day,
			"meals": campus.MenuFor(day),
		})
	}

	week := make(map[string]map[string][]campus.MenuItem, len(campus.Days))
	for _, day := range campus.Days {
		week[day] = campus.MenuFor(day)
	}
	return c.JSON(week)
}

// GetClubs handles GET /api/campus/clubs
func (s *Server) GetClubs(c *fiber.Ctx) error {
	return c.JSON(campus.Clubs)
}

// GetFoodItems handles GET /api/campus/food
func (s *Server) GetFoodItems(c *fiber.Ctx) error {
	return c.JSON(campus.FoodItems)
}

// GetPlaces handles GET /api/campus/places
func (s *Server) GetPlaces(c *fiber.Ctx) error {
	return c.JSON(campus.Places)
}

// contactForm is the shared shape of the club-join and food-enquiry forms.
type contactForm struct {
	Club    string `json:"club,omitempty"`
	Item    string `json:"item,omitempty"`
	Name    string `json:"name"`
	RegNo   string `json:"regNo"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// JoinClub handles POST /api/clubs/join. Delivery is simulated: the request
// is logged as a dispatched email and acknowledged.
func (s *Server) JoinClub(c *fiber.Ctx) error {
	var form contactForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if form.Club == "" || form.Name == "" || form.RegNo == "" || form.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Club, name, registration number, and email are required"))
	}

	middleware.Logger.InfoContext(c.UserContext(), "simulated email dispatch",
		"kind", "club_join", "club", form.Club, "reg_no", form.RegNo)

	return c.JSON(fiber.Map{
		"message": "Application sent to " + form.Club + "! They will contact you by email.",
	})
}

// FoodEnquiry handles POST /api/food/enquiry, the simulated SMS counterpart.
func (s *Server) FoodEnquiry(c *fiber.Ctx) error {
	var form contactForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if form.Item == "" || form.Name == "" || form.Mobile == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Item, name, and mobile are required"))
	}

	middleware.Logger.InfoContext(c.UserContext(), "simulated sms dispatch",
		"kind", "food_enquiry", "item", form.Item, "mobile", form.Mobile)

	return c.JSON(fiber.Map{
		"message": "Enquiry sent! The shop will reach out on " + form.Mobile + ".",
	})
}
