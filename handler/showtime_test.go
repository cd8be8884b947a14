package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Taulan23/kino-system/database"
	"github.com/Taulan23/kino-system/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listShowtimes(t *testing.T, f *fixture, cityId uint) int64 {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/showtime/", nil)
	if cityId != 0 {
		req.AddCookie(&http.Cookie{Name: "selected_city", Value: strconv.FormatUint(uint64(cityId), 10)})
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			TotalCount int64 `json:"totalCount"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Data.TotalCount
}

func TestShowtimeListingCityFilter(t *testing.T) {
	f := setup(t)
	db := database.DB

	// second city with its own session
	city := model.City{Name: "Kazan", IsActive: true}
	require.NoError(t, db.Create(&city).Error)
	cinema := model.Cinema{Name: "Kino East", CityId: city.ID, IsActive: true}
	require.NoError(t, db.Create(&cinema).Error)
	hall := model.Hall{CinemaId: cinema.ID, Name: "Hall 1", Rows: 4, SeatsPerRow: 6}
	require.NoError(t, db.Create(&hall).Error)
	showtime := model.ShowTime{MovieId: f.showtime.MovieId, HallId: hall.ID,
		StartTime: time.Now().Add(5 * time.Hour), Price: 400, IsActive: true}
	require.NoError(t, db.Create(&showtime).Error)

	var moscow model.City
	require.NoError(t, db.Where("name = ?", "Moscow").First(&moscow).Error)

	// without a city cookie the schedule is unfiltered
	assert.Equal(t, int64(2), listShowtimes(t, f, 0))

	// with a selected city only its sessions show
	assert.Equal(t, int64(1), listShowtimes(t, f, moscow.ID))
	assert.Equal(t, int64(1), listShowtimes(t, f, city.ID))
}
