package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Taulan23/kino-system/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewDuplicateRejected(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/movie/%d/review", f.showtime.MovieId)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"rating": 9, "text": "Loved it"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"rating": 3, "text": "Changed my mind"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var warning struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&warning))
	assert.Equal(t, "warning", warning.Status)

	// the original review is untouched
	resp = doJSON(t, f.app, http.MethodGet, "/api/v1/review/my", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload struct {
		Data []model.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 1)
	assert.Equal(t, 9, payload.Data[0].Rating)
}

func TestReviewModeration(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/movie/%d/review", f.showtime.MovieId)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"rating": 8, "text": "Solid"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Data model.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.True(t, created.Data.IsApproved)

	// regular users cannot reach the moderation routes
	toggleURL := fmt.Sprintf("/api/v1/staff/review/%d/toggle", created.Data.ID)
	resp = doJSON(t, f.app, http.MethodPatch, toggleURL, alice, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// staff toggle hides the review, a second toggle restores it
	usher := login(t, f.app, "usher")
	resp = doJSON(t, f.app, http.MethodPatch, toggleURL, usher, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled struct {
		Data model.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toggled))
	assert.False(t, toggled.Data.IsApproved)

	resp = doJSON(t, f.app, http.MethodPatch, toggleURL, usher, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&toggled))
	assert.True(t, toggled.Data.IsApproved)
}

func TestDeleteOwnReview(t *testing.T) {
	f := setup(t)
	alice := login(t, f.app, "alice")
	url := fmt.Sprintf("/api/v1/movie/%d/review", f.showtime.MovieId)

	resp := doJSON(t, f.app, http.MethodPost, url, alice, fiber.Map{"rating": 7, "text": "Fine"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Data model.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	deleteURL := fmt.Sprintf("/api/v1/review/%d", created.Data.ID)

	// another user may not delete it
	bob := login(t, f.app, "bob")
	resp = doJSON(t, f.app, http.MethodDelete, deleteURL, bob, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodDelete, deleteURL, alice, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodGet, "/api/v1/review/my", alice, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload struct {
		Data []model.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Data, 0)
}
