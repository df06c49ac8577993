package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventConcluded(t *testing.T) {
	for status, want := range map[string]bool{
		EventStatusUpcoming:  false,
		EventStatusOngoing:   false,
		EventStatusCompleted: true,
		EventStatusCancelled: true,
	} {
		e := Event{Status: status}
		assert.Equal(t, want, e.Concluded(), "status=%s", status)
	}
}

func TestEventPastDue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Event{Status: EventStatusUpcoming, Date: past}).PastDue(now))
	assert.True(t, (&Event{Status: EventStatusOngoing, Date: past}).PastDue(now))
	assert.False(t, (&Event{Status: EventStatusUpcoming, Date: future}).PastDue(now))
	// Terminal states never transition again.
	assert.False(t, (&Event{Status: EventStatusCompleted, Date: past}).PastDue(now))
	assert.False(t, (&Event{Status: EventStatusCancelled, Date: past}).PastDue(now))
}
