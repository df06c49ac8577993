package models

import (
	"time"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

const (
	EventCategoryAcademic        = "academic"
	EventCategorySports          = "sports"
	EventCategoryExtracurricular = "extracurricular"
)

// DepartmentAll is the wildcard scope: the event is open to every department.
const DepartmentAll = "all"

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(24);not null" json:"category"` // academic | sports | extracurricular

	Points     int64  `gorm:"not null" json:"points"` // reward per participant, 1..1000
	Department string `gorm:"index;default:'all'" json:"department"`

	Date   time.Time `gorm:"index;not null" json:"date"`
	Status string    `gorm:"type:varchar(16);default:'upcoming'" json:"status"`

	MaxParticipants *int   `json:"max_participants,omitempty"`
	BannerURL       string `gorm:"type:text" json:"banner_url,omitempty"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	Participants []Participation `gorm:"foreignKey:EventID" json:"participants,omitempty"`

	Timestamps
}

// Concluded reports whether the event can no longer be joined.
func (e *Event) Concluded() bool {
	return e.Status == EventStatusCompleted || e.Status == EventStatusCancelled
}

// PastDue reports whether a still-open event should lazily transition to
// completed because its date has passed.
func (e *Event) PastDue(now time.Time) bool {
	return (e.Status == EventStatusUpcoming || e.Status == EventStatusOngoing) && e.Date.Before(now)
}

type CreateEventRequest struct {
	Title           string `json:"title" validate:"required,min=3,max=150"`
	Description     string `json:"description" validate:"required"`
	Category        string `json:"category" validate:"required,oneof=academic sports extracurricular"`
	Points          int64  `json:"points" validate:"required,min=1,max=1000"`
	Department      string `json:"department" validate:"required"`
	Date            string `json:"date" validate:"required"` // RFC3339 or YYYY-MM-DD
	MaxParticipants *int   `json:"max_participants,omitempty" validate:"omitempty,min=1"`
}

type UpdateEventRequest struct {
	Title           string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty" validate:"omitempty,oneof=academic sports extracurricular"`
	Points          *int64 `json:"points,omitempty" validate:"omitempty,min=1,max=1000"`
	Department      string `json:"department,omitempty"`
	Date            string `json:"date,omitempty"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	MaxParticipants *int   `json:"max_participants,omitempty" validate:"omitempty,min=1"`
}

type AwardPointsRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Points int64  `json:"points" validate:"required,min=1,max=1000"`
}
