package models

import (
	"time"
)

const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Requirement kinds. Streak and custom are persisted but never auto-qualify;
// the evaluator has explicit unsupported arms for them.
const (
	RequirementPoints = "points"
	RequirementEvents = "events"
	RequirementStreak = "streak"
	RequirementCustom = "custom"
)

type Achievement struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Code        string `gorm:"uniqueIndex;not null" json:"code"` // slugged title, e.g. "first-steps"
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"index" json:"category"`
	Rarity      string `gorm:"type:varchar(16);default:'common'" json:"rarity"`

	Points int64 `gorm:"not null" json:"points"` // award value, 10..1000

	RequirementType        string `gorm:"type:varchar(16);not null" json:"requirement_type"`
	RequirementValue       int64  `json:"requirement_value,omitempty"`
	RequirementDescription string `gorm:"type:text" json:"requirement_description,omitempty"` // custom only

	IconURL string `gorm:"type:text" json:"icon_url,omitempty"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	Timestamps
}

// UserAchievement is an awarded instance. The unique (user, achievement) pair
// is what makes the sweep idempotent with respect to already-held awards.
type UserAchievement struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID        string    `gorm:"index;not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID string    `gorm:"index;not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	PointsAwarded int64     `json:"points_awarded"`
	EarnedAt      time.Time `json:"earned_at" gorm:"autoCreateTime"`

	Achievement *Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

type CreateAchievementRequest struct {
	Title                  string `json:"title" validate:"required,min=3,max=150"`
	Description            string `json:"description" validate:"required"`
	Category               string `json:"category" validate:"required"`
	Rarity                 string `json:"rarity" validate:"required,oneof=common rare epic legendary"`
	Points                 int64  `json:"points" validate:"required,min=10,max=1000"`
	RequirementType        string `json:"requirement_type" validate:"required,oneof=points events streak custom"`
	RequirementValue       int64  `json:"requirement_value,omitempty" validate:"omitempty,min=1"`
	RequirementDescription string `json:"requirement_description,omitempty"`
}

type UpdateAchievementRequest struct {
	Title                  string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description            string `json:"description,omitempty"`
	Category               string `json:"category,omitempty"`
	Rarity                 string `json:"rarity,omitempty" validate:"omitempty,oneof=common rare epic legendary"`
	Points                 *int64 `json:"points,omitempty" validate:"omitempty,min=10,max=1000"`
	RequirementType        string `json:"requirement_type,omitempty" validate:"omitempty,oneof=points events streak custom"`
	RequirementValue       *int64 `json:"requirement_value,omitempty" validate:"omitempty,min=1"`
	RequirementDescription string `json:"requirement_description,omitempty"`
	IsActive               *bool  `json:"is_active,omitempty"`
}
