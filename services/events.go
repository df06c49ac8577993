package services

import (
	"errors"
	"fmt"
	"time"

	"campus-rewards-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// EventFilter narrows the event listing. Empty fields are ignored.
type EventFilter struct {
	Department string
	Category   string
	Status     string
}

// ParseEventDate accepts RFC3339 or a bare YYYY-MM-DD date.
func ParseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", raw)
	}
	return t, nil
}

func (s *EventService) List(filter EventFilter, page, limit int) ([]models.Event, int64, error) {
	q := s.DB.Model(&models.Event{}).Where("is_active = ?", true)
	if filter.Department != "" {
		q = q.Where("department = ? OR department = ?", filter.Department, models.DepartmentAll)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := q.Order("date ASC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&events).Error
	return events, total, err
}

func (s *EventService) Upcoming() ([]models.Event, error) {
	var events []models.Event
	err := s.DB.Where("is_active = ? AND status = ? AND date >= ?",
		true, models.EventStatusUpcoming, time.Now()).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (s *EventService) ByDepartment(department string) ([]models.Event, error) {
	var events []models.Event
	err := s.DB.Where("is_active = ? AND (department = ? OR department = ?)",
		true, department, models.DepartmentAll).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

// Get returns one active event with its participant roster populated.
func (s *EventService) Get(id string) (*models.Event, error) {
	var event models.Event
	err := s.DB.Where("is_active = ?", true).
		Preload("Participants").
		First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Create(req models.CreateEventRequest, bannerURL string) (*models.Event, error) {
	date, err := ParseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		Title:           req.Title,
		Slug:            s.uniqueSlug(req.Title),
		Description:     req.Description,
		Category:        req.Category,
		Points:          req.Points,
		Department:      req.Department,
		Date:            date,
		Status:          models.EventStatusUpcoming,
		MaxParticipants: req.MaxParticipants,
		BannerURL:       bannerURL,
		IsActive:        true,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Update(id string, req models.UpdateEventRequest, bannerURL string) (*models.Event, error) {
	var event models.Event
	if err := s.DB.Where("is_active = ?", true).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if req.Title != "" && req.Title != event.Title {
		event.Title = req.Title
		event.Slug = s.uniqueSlug(req.Title)
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Category != "" {
		event.Category = req.Category
	}
	if req.Points != nil {
		event.Points = *req.Points
	}
	if req.Department != "" {
		event.Department = req.Department
	}
	if req.Date != "" {
		date, err := ParseEventDate(req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Status != "" {
		event.Status = req.Status
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = req.MaxParticipants
	}
	if bannerURL != "" {
		event.BannerURL = bannerURL
	}

	// Lazy transition on write: a stale date pushes an open event to completed.
	if event.PastDue(time.Now()) {
		event.Status = models.EventStatusCompleted
	}

	if err := s.DB.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// SoftDelete retires the event. The row and its participations stay for
// history; read paths filter on is_active.
func (s *EventService) SoftDelete(id string) error {
	res := s.DB.Model(&models.Event{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// uniqueSlug slugs the title and disambiguates collisions with a short
// random suffix.
func (s *EventService) uniqueSlug(title string) string {
	base := slug.Make(title)
	var count int64
	s.DB.Model(&models.Event{}).Where("slug = ?", base).Count(&count)
	if count == 0 {
		return base
	}
	return base + "-" + uuid.NewString()[:8]
}
