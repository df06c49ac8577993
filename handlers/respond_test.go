package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"campus-rewards-system/models"
	"campus-rewards-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusFor(t *testing.T, err error) (int, models.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return failFor(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestFailForMapsErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrUserNotFound, fiber.StatusNotFound},
		{services.ErrEventNotFound, fiber.StatusNotFound},
		{services.ErrAchievementNotFound, fiber.StatusNotFound},
		{services.ErrNotParticipating, fiber.StatusNotFound},
		{services.ErrAlreadyParticipating, fiber.StatusConflict},
		{services.ErrEventFull, fiber.StatusConflict},
		{services.ErrEventConcluded, fiber.StatusConflict},
		{services.ErrEventInactive, fiber.StatusConflict},
		{errors.New("database exploded"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, body := statusFor(t, tt.err)
		assert.Equal(t, tt.want, status, "err=%v", tt.err)
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Message)
	}
}

// Internal errors must not leak their detail to clients.
func TestFailForHidesInternalDetail(t *testing.T) {
	_, body := statusFor(t, errors.New("pq: connection refused"))
	assert.Equal(t, "Something went wrong", body.Message)
}
