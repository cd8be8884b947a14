package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/helper"
	"github.com/Taulan23/kino-system/model"
	"github.com/Taulan23/kino-system/router"
	"github.com/Taulan23/kino-system/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	app      *fiber.App
	showtime model.ShowTime
}

func setup(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	helper.JwtSecret = []byte("test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)
	users := []model.User{
		{Username: "alice", Email: "alice@example.com", Password: hashed, Role: constants.ROLE_USER, IsActive: true},
		{Username: "bob", Email: "bob@example.com", Password: hashed, Role: constants.ROLE_USER, IsActive: true},
		{Username: "root", Email: "root@example.com", Password: hashed, Role: constants.ROLE_ADMIN, IsActive: true},
		{Username: "usher", Email: "usher@example.com", Password: hashed, Role: constants.ROLE_STAFF, IsActive: true},
	}
	require.NoError(t, db.Create(&users).Error)

	city := model.City{Name: "Moscow", IsActive: true}
	require.NoError(t, db.Create(&city).Error)
	movie := model.Movie{Title: "Dune", Slug: "dune", Duration: 155, IsActive: true}
	require.NoError(t, db.Create(&movie).Error)
	cinema := model.Cinema{Name: "Kino Center", CityId: city.ID, IsActive: true}
	require.NoError(t, db.Create(&cinema).Error)
	hall := model.Hall{CinemaId: cinema.ID, Name: "Hall 1", Rows: 6, SeatsPerRow: 10}
	require.NoError(t, db.Create(&hall).Error)
	showtime := model.ShowTime{MovieId: movie.ID, HallId: hall.ID, StartTime: time.Now().Add(4 * time.Hour), Price: 500, IsActive: true}
	require.NoError(t, db.Create(&showtime).Error)

	app := fiber.New()
	router.SetupRoutes(app)
	return &fixture{app: app, showtime: showtime}
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{"username": username, "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "access_token" {
			return cookie.Value
		}
	}
	t.Fatal("no access_token cookie in login response")
	return ""
}

func doJSON(t *testing.T, app *fiber.App, method, url, token string, payload any) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestBookTicketEndpoint(t *testing.T) {
	f := setup(t)
	token := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, token, fiber.Map{"row": 2, "seat": 5})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		Data model.Ticket `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, constants.TICKET_PAID, payload.Data.Status)
	assert.Equal(t, 500.0, payload.Data.Price)
	assert.NotEmpty(t, payload.Data.Code)
}

func TestBookTicketSeatConflict(t *testing.T) {
	f := setup(t)
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	alice := login(t, f.app, "alice")
	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"row": 1, "seat": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bob := login(t, f.app, "bob")
	resp = doJSON(t, f.app, http.MethodPost, url, bob, fiber.Map{"row": 1, "seat": 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBookTicketSeatOutOfBounds(t *testing.T) {
	f := setup(t)
	token := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, token, fiber.Map{"row": 7, "seat": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, url, token, fiber.Map{"row": 1, "seat": 11})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookTicketUnauthenticated(t *testing.T) {
	f := setup(t)
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, "", fiber.Map{"row": 1, "seat": 1})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCancelTicketEndpoint(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"row": 3, "seat": 3})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payload struct {
		Data model.Ticket `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	cancelURL := fmt.Sprintf("/api/v1/ticket/%d/cancel", payload.Data.ID)
	resp = doJSON(t, f.app, http.MethodPost, cancelURL, alice, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// a repeat cancel is rejected for regular users
	resp = doJSON(t, f.app, http.MethodPost, cancelURL, alice, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// but is only a warning for admins
	admin := login(t, f.app, "root")
	resp = doJSON(t, f.app, http.MethodPost, cancelURL, admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var warning struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&warning))
	assert.Equal(t, "warning", warning.Status)
}

func TestCancelForeignTicketForbidden(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"row": 4, "seat": 4})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payload struct {
		Data model.Ticket `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	bob := login(t, f.app, "bob")
	cancelURL := fmt.Sprintf("/api/v1/ticket/%d/cancel", payload.Data.ID)
	resp = doJSON(t, f.app, http.MethodPost, cancelURL, bob, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCancelTooCloseToStart(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"row": 5, "seat": 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var payload struct {
		Data model.Ticket `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.NoError(t, database.DB.Model(&model.ShowTime{}).
		Where("id = ?", f.showtime.ID).
		Update("start_time", time.Now().Add(20*time.Minute)).Error)

	cancelURL := fmt.Sprintf("/api/v1/ticket/%d/cancel", payload.Data.ID)
	resp = doJSON(t, f.app, http.MethodPost, cancelURL, alice, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// admin may still cancel
	admin := login(t, f.app, "root")
	resp = doJSON(t, f.app, http.MethodPost, cancelURL, admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMyTickets(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/showtime/%d/book", f.showtime.ID)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"row": 6, "seat": 6})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodGet, "/api/v1/ticket/my", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data []struct {
			model.Ticket
			CanCancel bool `json:"canCancel"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 1)
	assert.True(t, payload.Data[0].CanCancel)

	// other users see nothing of alice's tickets
	bob := login(t, f.app, "bob")
	resp = doJSON(t, f.app, http.MethodGet, "/api/v1/ticket/my", bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Data, 0)
}
