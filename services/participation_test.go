package services

import (
	"testing"
	"time"

	"campus-rewards-system/models"

	"github.com/stretchr/testify/assert"
)

func openEvent(max *int) *models.Event {
	return &models.Event{
		Status:          models.EventStatusUpcoming,
		Points:          200,
		MaxParticipants: max,
		IsActive:        true,
		Date:            time.Now().Add(24 * time.Hour),
	}
}

func TestCanJoin(t *testing.T) {
	cap3 := 3

	t.Run("open event with room", func(t *testing.T) {
		assert.NoError(t, CanJoin(openEvent(&cap3), 2, false))
	})

	t.Run("no capacity limit", func(t *testing.T) {
		assert.NoError(t, CanJoin(openEvent(nil), 100000, false))
	})

	t.Run("event full", func(t *testing.T) {
		assert.ErrorIs(t, CanJoin(openEvent(&cap3), 3, false), ErrEventFull)
	})

	t.Run("already participating", func(t *testing.T) {
		assert.ErrorIs(t, CanJoin(openEvent(nil), 5, true), ErrAlreadyParticipating)
	})

	t.Run("completed event fails regardless of other preconditions", func(t *testing.T) {
		e := openEvent(nil)
		e.Status = models.EventStatusCompleted
		assert.ErrorIs(t, CanJoin(e, 0, false), ErrEventConcluded)
	})

	t.Run("cancelled event", func(t *testing.T) {
		e := openEvent(nil)
		e.Status = models.EventStatusCancelled
		assert.ErrorIs(t, CanJoin(e, 0, false), ErrEventConcluded)
	})

	t.Run("ongoing event still joinable", func(t *testing.T) {
		e := openEvent(nil)
		e.Status = models.EventStatusOngoing
		assert.NoError(t, CanJoin(e, 0, false))
	})

	t.Run("retired event", func(t *testing.T) {
		e := openEvent(nil)
		e.IsActive = false
		assert.ErrorIs(t, CanJoin(e, 0, false), ErrEventInactive)
	})

	t.Run("inactive wins over concluded", func(t *testing.T) {
		e := openEvent(nil)
		e.IsActive = false
		e.Status = models.EventStatusCompleted
		assert.ErrorIs(t, CanJoin(e, 0, false), ErrEventInactive)
	})
}
