package services

import (
	"testing"

	"campus-rewards-system/models"

	"github.com/stretchr/testify/assert"
)

func TestMeetsRequirement(t *testing.T) {
	tests := []struct {
		name  string
		stats UserStats
		a     models.Achievement
		want  bool
	}{
		{
			name:  "points threshold met",
			stats: UserStats{TotalPoints: 2850},
			a:     models.Achievement{RequirementType: models.RequirementPoints, RequirementValue: 2000, IsActive: true},
			want:  true,
		},
		{
			name:  "points threshold met exactly",
			stats: UserStats{TotalPoints: 2000},
			a:     models.Achievement{RequirementType: models.RequirementPoints, RequirementValue: 2000, IsActive: true},
			want:  true,
		},
		{
			name:  "points threshold not met",
			stats: UserStats{TotalPoints: 1999},
			a:     models.Achievement{RequirementType: models.RequirementPoints, RequirementValue: 2000, IsActive: true},
			want:  false,
		},
		{
			name:  "events threshold met",
			stats: UserStats{EventsParticipated: 5},
			a:     models.Achievement{RequirementType: models.RequirementEvents, RequirementValue: 5, IsActive: true},
			want:  true,
		},
		{
			name:  "events threshold not met",
			stats: UserStats{EventsParticipated: 4},
			a:     models.Achievement{RequirementType: models.RequirementEvents, RequirementValue: 5, IsActive: true},
			want:  false,
		},
		{
			name:  "streak never qualifies",
			stats: UserStats{TotalPoints: 99999, EventsParticipated: 99999},
			a:     models.Achievement{RequirementType: models.RequirementStreak, RequirementValue: 1, IsActive: true},
			want:  false,
		},
		{
			name:  "custom never qualifies",
			stats: UserStats{TotalPoints: 99999},
			a:     models.Achievement{RequirementType: models.RequirementCustom, RequirementDescription: "judged manually", IsActive: true},
			want:  false,
		},
		{
			name:  "inactive achievement never qualifies",
			stats: UserStats{TotalPoints: 99999},
			a:     models.Achievement{RequirementType: models.RequirementPoints, RequirementValue: 1, IsActive: false},
			want:  false,
		},
		{
			name:  "unknown kind never qualifies",
			stats: UserStats{TotalPoints: 99999},
			a:     models.Achievement{RequirementType: "mystery", RequirementValue: 1, IsActive: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsRequirement(tt.stats, &tt.a))
		})
	}
}

func TestMeetsRequirementDoesNotMutate(t *testing.T) {
	stats := UserStats{TotalPoints: 500, EventsParticipated: 3}
	a := models.Achievement{RequirementType: models.RequirementPoints, RequirementValue: 100, IsActive: true}

	MeetsRequirement(stats, &a)

	assert.Equal(t, UserStats{TotalPoints: 500, EventsParticipated: 3}, stats)
	assert.Equal(t, int64(100), a.RequirementValue)
}

func TestNewlyQualifiedSkipsHeld(t *testing.T) {
	stats := UserStats{TotalPoints: 5000, EventsParticipated: 50}
	candidates := []models.Achievement{
		{ID: "a1", RequirementType: models.RequirementPoints, RequirementValue: 100, IsActive: true},
		{ID: "a2", RequirementType: models.RequirementEvents, RequirementValue: 10, IsActive: true},
		{ID: "a3", RequirementType: models.RequirementPoints, RequirementValue: 9999, IsActive: true},
	}
	held := map[string]bool{"a1": true}

	got := NewlyQualified(stats, held, candidates)

	if assert.Len(t, got, 1) {
		assert.Equal(t, "a2", got[0].ID)
	}

	// A second pass with the first pass folded into held awards nothing new.
	held["a2"] = true
	assert.Empty(t, NewlyQualified(stats, held, candidates))
}
