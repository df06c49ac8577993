package services

import (
	"log"
	"time"

	"campus-rewards-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartStatusSweeper marks open events whose date has passed as completed.
// The write paths already do this lazily; the sweeper catches events nobody
// touches.
func (s *EventService) StartStatusSweeper() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var events []models.Event
			now := time.Now()
			err := s.DB.Where("is_active = ? AND status IN ? AND date < ?",
				true, []string{models.EventStatusUpcoming, models.EventStatusOngoing}, now).
				Find(&events).Error
			if err != nil {
				log.Printf("[Sweeper] DB error: %v", err)
				return
			}

			for _, e := range events {
				e.Status = models.EventStatusCompleted
				if err := s.DB.Save(&e).Error; err != nil {
					log.Printf("[Sweeper] Failed to complete event %s: %v", e.ID, err)
				} else {
					log.Printf("✅ Auto-completed event: %s", e.Title)
				}
			}
		}),
	)
}
