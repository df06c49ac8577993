package services

import (
	"errors"
	"log"
	"time"

	"campus-rewards-system/models"

	"gorm.io/gorm"
)

type ParticipationService struct {
	DB *gorm.DB
}

func NewParticipationService(db *gorm.DB) *ParticipationService {
	return &ParticipationService{DB: db}
}

// CanJoin checks the join preconditions against an already-loaded event.
// Pure so the precondition table is testable without a database.
func CanJoin(event *models.Event, participantCount int64, alreadyJoined bool) error {
	if !event.IsActive {
		return ErrEventInactive
	}
	if event.Concluded() {
		return ErrEventConcluded
	}
	if alreadyJoined {
		return ErrAlreadyParticipating
	}
	if event.MaxParticipants != nil && participantCount >= int64(*event.MaxParticipants) {
		return ErrEventFull
	}
	return nil
}

// refreshEventStatus lazily completes an open event whose date has passed.
// Runs on every write-path touch; the scheduler covers idle events.
func refreshEventStatus(tx *gorm.DB, event *models.Event) error {
	if !event.PastDue(time.Now()) {
		return nil
	}
	event.Status = models.EventStatusCompleted
	return tx.Save(event).Error
}

// JoinEvent records participation and credits the event's point value, all in
// one transaction so the ledger row and the user's totals cannot diverge.
func (s *ParticipationService) JoinEvent(userID, eventID string) (*models.Participation, error) {
	// The lazy status transition is its own write: it must stick even when
	// the join itself is rejected and rolled back.
	var stale models.Event
	if err := s.DB.First(&stale, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if err := refreshEventStatus(s.DB, &stale); err != nil {
		return nil, err
	}

	var created models.Participation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		event, user, err := s.loadPair(tx, userID, eventID)
		if err != nil {
			return err
		}

		already, count, err := s.participationState(tx, userID, eventID)
		if err != nil {
			return err
		}
		if err := CanJoin(event, count, already); err != nil {
			return err
		}

		created = models.Participation{
			UserID:       userID,
			EventID:      eventID,
			PointsEarned: event.Points,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return applyPointsDelta(tx, user, event.Points)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// LeaveEvent removes a participation and refunds the points recorded at join
// time, not the event's current point value.
func (s *ParticipationService) LeaveEvent(userID, eventID string) (*models.User, error) {
	var updated *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var part models.Participation
		if err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&part).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotParticipating
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Delete(&part).Error; err != nil {
			return err
		}
		if err := applyPointsDelta(tx, &user, -part.PointsEarned); err != nil {
			return err
		}
		updated = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AwardPoints is the administrative grant: an admin credits an arbitrary
// point value for an event, bypassing status and capacity checks but not the
// duplicate-participation guard. A full achievement sweep follows inside the
// same transaction.
func (s *ParticipationService) AwardPoints(eventID, userID string, points int64) (*models.Participation, []models.UserAchievement, error) {
	var created models.Participation
	var newAwards []models.UserAchievement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		_, user, err := s.loadPair(tx, userID, eventID)
		if err != nil {
			return err
		}

		already, _, err := s.participationState(tx, userID, eventID)
		if err != nil {
			return err
		}
		if already {
			return ErrAlreadyParticipating
		}

		created = models.Participation{
			UserID:       userID,
			EventID:      eventID,
			PointsEarned: points,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		if err := applyPointsDelta(tx, user, points); err != nil {
			return err
		}

		newAwards, err = NewAchievementService(s.DB).SweepTx(tx, userID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	log.Printf("🎯 Points awarded: %d to user %s for event %s (%d new achievements)",
		points, userID, eventID, len(newAwards))
	return &created, newAwards, nil
}

func (s *ParticipationService) loadPair(tx *gorm.DB, userID, eventID string) (*models.Event, *models.User, error) {
	var event models.Event
	if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, err
	}
	var user models.User
	if err := tx.Where("is_active = ?", true).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	return &event, &user, nil
}

func (s *ParticipationService) participationState(tx *gorm.DB, userID, eventID string) (already bool, count int64, err error) {
	var mine int64
	if err = tx.Model(&models.Participation{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&mine).Error; err != nil {
		return false, 0, err
	}
	if err = tx.Model(&models.Participation{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return false, 0, err
	}
	return mine > 0, count, nil
}
