package services

import "errors"

// Conflict and precondition errors surfaced by the participation and
// achievement flows. Handlers map these to 404/409 while everything else
// falls through as a server error.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrAchievementNotFound  = errors.New("achievement not found")
	ErrEventConcluded       = errors.New("cannot participate in a completed or cancelled event")
	ErrEventInactive        = errors.New("event is no longer available")
	ErrEventFull            = errors.New("event has reached maximum participants")
	ErrAlreadyParticipating = errors.New("user is already participating in this event")
	ErrNotParticipating     = errors.New("user is not participating in this event")
)
