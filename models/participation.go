package models

import (
	"time"
)

// Participation is the single source of truth for event participation. The
// original design embedded participant lists in both the user and the event
// document; one ledger row per (user, event) pair replaces both views.
// PointsEarned is frozen at join time: a later change to the event's point
// value does not retroactively change what a leave refunds.
type Participation struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID         string    `gorm:"index;not null;uniqueIndex:idx_user_event" json:"user_id"`
	EventID        string    `gorm:"index;not null;uniqueIndex:idx_user_event" json:"event_id"`
	PointsEarned   int64     `json:"points_earned"`
	ParticipatedAt time.Time `json:"participated_at" gorm:"autoCreateTime"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
