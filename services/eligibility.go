package services

import (
	"campus-rewards-system/models"
)

// UserStats is the aggregate slice of a user the evaluator looks at.
type UserStats struct {
	TotalPoints        int64
	EventsParticipated int64
}

// MeetsRequirement reports whether stats satisfy one achievement's
// requirement. Pure: no I/O, no mutation of inputs.
//
// Streak and custom requirements are persisted but have no evaluation logic
// yet; they deterministically never qualify.
func MeetsRequirement(stats UserStats, a *models.Achievement) bool {
	if !a.IsActive {
		return false
	}
	switch a.RequirementType {
	case models.RequirementPoints:
		return stats.TotalPoints >= a.RequirementValue
	case models.RequirementEvents:
		return stats.EventsParticipated >= a.RequirementValue
	case models.RequirementStreak, models.RequirementCustom:
		return false
	default:
		return false
	}
}

// NewlyQualified filters candidates down to achievements the user does not
// already hold and whose requirement the stats satisfy. Stats are fixed for
// the whole pass: points from awards inside one sweep do not cascade into
// further awards.
func NewlyQualified(stats UserStats, held map[string]bool, candidates []models.Achievement) []models.Achievement {
	var qualified []models.Achievement
	for i := range candidates {
		a := candidates[i]
		if held[a.ID] || !MeetsRequirement(stats, &a) {
			continue
		}
		qualified = append(qualified, a)
	}
	return qualified
}
