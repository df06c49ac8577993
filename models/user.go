package models

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the single aggregate for identity and progression. TotalPoints and
// Level are denormalized for performance; every write to them goes through the
// points service inside the same transaction as the participation or award row
// they reflect.
type User struct {
	ID        string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`
	StudentID *string `gorm:"uniqueIndex" json:"student_id,omitempty"`
	Password  string  `gorm:"not null" json:"-"`

	Role       string `gorm:"type:varchar(16);default:'student'" json:"role"` // student | admin
	Department string `gorm:"index" json:"department"`
	Year       int    `json:"year,omitempty"`

	TotalPoints int64 `json:"total_points" gorm:"default:0"`
	Level       int   `json:"level" gorm:"default:1"` // always floor(total_points/200)+1

	IsActive bool `json:"is_active" gorm:"default:true"`

	Participations []Participation   `gorm:"foreignKey:UserID" json:"participations,omitempty"`
	Achievements   []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	StudentID  string `json:"student_id,omitempty" validate:"omitempty,min=3,max=32"`
	Department string `json:"department" validate:"required"`
	Year       int    `json:"year,omitempty" validate:"omitempty,min=1,max=7"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateDetailsRequest struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty" validate:"omitempty,min=1,max=7"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// AdminUpdateUserRequest has no points/level fields: those are derived state
// and never accepted from a client.
type AdminUpdateUserRequest struct {
	Name       string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Role       string `json:"role,omitempty" validate:"omitempty,oneof=student admin"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty" validate:"omitempty,min=1,max=7"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// LeaderboardEntry is the public slice of a user shown on the leaderboard.
type LeaderboardEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	TotalPoints int64  `json:"total_points"`
	Level       int    `json:"level"`
}
