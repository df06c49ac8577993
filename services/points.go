package services

import (
	"campus-rewards-system/models"

	"gorm.io/gorm"
)

// PointsPerLevel: a user's level is floor(total_points/200)+1. Level is never
// stored independently of this formula and never accepted as client input.
const PointsPerLevel = 200

// LevelForPoints computes the level for a point total with true floor
// semantics. Totals can go negative when a leave refunds more than the
// running total (no floor is enforced on removal), and Go's integer division
// truncates toward zero, so the negative case is handled explicitly.
func LevelForPoints(total int64) int {
	q := total / PointsPerLevel
	if total < 0 && total%PointsPerLevel != 0 {
		q--
	}
	return int(q) + 1
}

// applyPointsDelta adjusts a user's total and recomputes the level in the
// same save. Callers run this inside the transaction that records whatever
// the delta reflects (participation row, award row).
func applyPointsDelta(tx *gorm.DB, user *models.User, delta int64) error {
	user.TotalPoints += delta
	user.Level = LevelForPoints(user.TotalPoints)
	return tx.Save(user).Error
}
