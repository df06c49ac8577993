package services

import (
	"os"
	"testing"
	"time"

	"campus-rewards-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDB opens the database named by TEST_DATABASE_URL, or skips. The
// transactional join/leave/award flows only have meaning against a real
// store; everything pure about them is covered in the unit tests.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Achievement{},
		&models.Participation{},
		&models.UserAchievement{},
	))
	t.Cleanup(func() {
		db.Exec("DELETE FROM user_achievements")
		db.Exec("DELETE FROM participations")
		db.Exec("DELETE FROM achievements")
		db.Exec("DELETE FROM events")
		db.Exec("DELETE FROM users")
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := models.User{
		Name:       "Test Student",
		Email:      email,
		Password:   "irrelevant",
		Role:       models.RoleStudent,
		Department: "physics",
		Level:      1,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedEvent(t *testing.T, db *gorm.DB, points int64, max *int) *models.Event {
	t.Helper()
	e := models.Event{
		Title:           "Science Fair",
		Slug:            "science-fair-" + time.Now().Format("150405.000000000"),
		Category:        models.EventCategoryAcademic,
		Points:          points,
		Department:      models.DepartmentAll,
		Date:            time.Now().Add(48 * time.Hour),
		Status:          models.EventStatusUpcoming,
		MaxParticipants: max,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&e).Error)
	return &e
}

func reload(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()
	var u models.User
	require.NoError(t, db.First(&u, "id = ?", id).Error)
	return &u
}

func TestJoinLeaveRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := NewParticipationService(db)

	user := seedUser(t, db, "roundtrip@example.edu")
	event := seedEvent(t, db, 200, nil)

	part, err := svc.JoinEvent(user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), part.PointsEarned)

	joined := reload(t, db, user.ID)
	assert.Equal(t, int64(200), joined.TotalPoints)
	assert.Equal(t, 2, joined.Level)

	// Leaving refunds the join-time value and restores the pre-join state.
	left, err := svc.LeaveEvent(user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left.TotalPoints)
	assert.Equal(t, 1, left.Level)

	var remaining int64
	db.Model(&models.Participation{}).Where("user_id = ?", user.ID).Count(&remaining)
	assert.Equal(t, int64(0), remaining)
}

func TestJoinTwiceDoesNotDoubleCount(t *testing.T) {
	db := testDB(t)
	svc := NewParticipationService(db)

	user := seedUser(t, db, "twice@example.edu")
	event := seedEvent(t, db, 100, nil)

	_, err := svc.JoinEvent(user.ID, event.ID)
	require.NoError(t, err)

	_, err = svc.JoinEvent(user.ID, event.ID)
	assert.ErrorIs(t, err, ErrAlreadyParticipating)

	assert.Equal(t, int64(100), reload(t, db, user.ID).TotalPoints)
}

func TestJoinFullEventLeavesStateUntouched(t *testing.T) {
	db := testDB(t)
	svc := NewParticipationService(db)

	one := 1
	event := seedEvent(t, db, 50, &one)
	first := seedUser(t, db, "first@example.edu")
	second := seedUser(t, db, "second@example.edu")

	_, err := svc.JoinEvent(first.ID, event.ID)
	require.NoError(t, err)

	_, err = svc.JoinEvent(second.ID, event.ID)
	assert.ErrorIs(t, err, ErrEventFull)

	assert.Equal(t, int64(0), reload(t, db, second.ID).TotalPoints)
	var count int64
	db.Model(&models.Participation{}).Where("event_id = ?", event.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestJoinCompletedEventFails(t *testing.T) {
	db := testDB(t)
	svc := NewParticipationService(db)

	user := seedUser(t, db, "late@example.edu")
	event := seedEvent(t, db, 100, nil)
	require.NoError(t, db.Model(event).Update("status", models.EventStatusCompleted).Error)

	_, err := svc.JoinEvent(user.ID, event.ID)
	assert.ErrorIs(t, err, ErrEventConcluded)
}

func TestJoinLazilyCompletesPastDueEvent(t *testing.T) {
	db := testDB(t)
	svc := NewParticipationService(db)

	user := seedUser(t, db, "stale@example.edu")
	event := seedEvent(t, db, 100, nil)
	require.NoError(t, db.Model(event).Update("date", time.Now().Add(-time.Hour)).Error)

	_, err := svc.JoinEvent(user.ID, event.ID)
	assert.ErrorIs(t, err, ErrEventConcluded)

	var refreshed models.Event
	require.NoError(t, db.First(&refreshed, "id = ?", event.ID).Error)
	assert.Equal(t, models.EventStatusCompleted, refreshed.Status)
}

func TestAwardSweepsAchievements(t *testing.T) {
	db := testDB(t)
	svc := NewParticipationService(db)

	user := seedUser(t, db, "award@example.edu")
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"total_points": 2700, "level": LevelForPoints(2700),
	}).Error)
	event := seedEvent(t, db, 100, nil)

	milestone := models.Achievement{
		Title:            "Point Collector",
		Code:             "point-collector",
		Rarity:           models.RarityEpic,
		Points:           100,
		RequirementType:  models.RequirementPoints,
		RequirementValue: 2000,
		IsActive:         true,
	}
	require.NoError(t, db.Create(&milestone).Error)

	_, awarded, err := svc.AwardPoints(event.ID, user.ID, 150)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, milestone.ID, awarded[0].AchievementID)

	// 2700 + 150 admin award + 100 achievement points.
	after := reload(t, db, user.ID)
	assert.Equal(t, int64(2950), after.TotalPoints)
	assert.Equal(t, LevelForPoints(2950), after.Level)

	// A second sweep with unchanged stats awards nothing.
	again, err := NewAchievementService(db).Sweep(user.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
}
