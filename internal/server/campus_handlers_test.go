package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nexus/internal/campus"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessMenuWholeWeek(t *testing.T) {
	app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/campus/menu", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var week map[string]map[string][]campus.MenuItem
	decodeBody(t, resp, &week)
	assert.Len(t, week, len(campus.Days))
	for _, day := range campus.Days {
		assert.Contains(t, week, day)
	}
}

func TestGetMessMenuSingleDay(t *testing.T) {
	app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/campus/menu?day=Monday", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Day   string                       `json:"day"`
		Meals map[string][]campus.MenuItem `json:"meals"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Monday", body.Day)
	assert.Contains(t, body.Meals, "Breakfast")
	assert.Contains(t, body.Meals, "Lunch")
	assert.Contains(t, body.Meals, "Dinner")
}

func TestCampusDirectories(t *testing.T) {
	app, _ := newTestServer(t)

	for _, target := range []string{"/api/campus/clubs", "/api/campus/food", "/api/campus/places"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)

		var items []map[string]any
		decodeBody(t, resp, &items)
		assert.NotEmpty(t, items, target)
	}
}

func TestJoinClub(t *testing.T) {
	app, s := newTestServer(t)
	token := studentToken(t, s)

	resp, err := app.Test(withToken(jsonReq(t, http.MethodPost, "/api/clubs/join", map[string]string{
		"club":  "Coding Club",
		"name":  "Arjun Sharma",
		"regNo": "2023CSB1001",
		"email": "arjun@iitrpr.ac.in",
	}), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "Coding Club")
}

func TestJoinClubValidation(t *testing.T) {
	app, s := newTestServer(t)
	token := studentToken(t, s)

	resp, err := app.Test(withToken(jsonReq(t, http.MethodPost, "/api/clubs/join",
		map[string]string{"club": "Coding Club"}), token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFoodEnquiry(t *testing.T) {
	app, s := newTestServer(t)
	token := studentToken(t, s)

	resp, err := app.Test(withToken(jsonReq(t, http.MethodPost, "/api/food/enquiry", map[string]string{
		"item":   "Momos",
		"name":   "Arjun Sharma",
		"mobile": "9876543210",
	}), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "9876543210")
}

func TestFoodEnquiryValidation(t *testing.T) {
	app, s := newTestServer(t)
	token := studentToken(t, s)

	resp, err := app.Test(withToken(jsonReq(t, http.MethodPost, "/api/food/enquiry",
		map[string]string{"item": "Momos"}), token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
