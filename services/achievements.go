package services

import (
	"errors"
	"fmt"
	"log"

	"campus-rewards-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type AchievementService struct {
	DB *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{DB: db}
}

// Sweep evaluates every active achievement the user does not already hold and
// awards the newly qualifying ones in a single transaction.
func (s *AchievementService) Sweep(userID string) ([]models.UserAchievement, error) {
	var awarded []models.UserAchievement
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		awarded, err = s.SweepTx(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return awarded, nil
}

// SweepTx is the sweep body, exposed so callers already inside a transaction
// (the admin award flow) can fold it into theirs.
//
// Eligibility is evaluated against the stats as of sweep start; points earned
// by awards inside the sweep do not cascade into further awards within the
// same invocation. Totals are folded in and the level recomputed once at the
// end. Already-held achievements are never re-awarded.
func (s *AchievementService) SweepTx(tx *gorm.DB, userID string) ([]models.UserAchievement, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var eventCount int64
	if err := tx.Model(&models.Participation{}).
		Where("user_id = ?", userID).
		Count(&eventCount).Error; err != nil {
		return nil, err
	}
	stats := UserStats{TotalPoints: user.TotalPoints, EventsParticipated: eventCount}

	var heldIDs []string
	if err := tx.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &heldIDs).Error; err != nil {
		return nil, err
	}
	held := make(map[string]bool, len(heldIDs))
	for _, id := range heldIDs {
		held[id] = true
	}

	var candidates []models.Achievement
	if err := tx.Where("is_active = ?", true).Find(&candidates).Error; err != nil {
		return nil, err
	}

	var awarded []models.UserAchievement
	var pointsGained int64
	for _, a := range NewlyQualified(stats, held, candidates) {
		ua := models.UserAchievement{
			UserID:        userID,
			AchievementID: a.ID,
			PointsAwarded: a.Points,
		}
		if err := tx.Create(&ua).Error; err != nil {
			return nil, err
		}
		ua.Achievement = &a
		awarded = append(awarded, ua)
		pointsGained += a.Points
		log.Printf("🎖️ Achievement unlocked: %s → %s", a.Title, userID)
	}

	if pointsGained > 0 {
		if err := applyPointsDelta(tx, &user, pointsGained); err != nil {
			return nil, err
		}
	}
	return awarded, nil
}

// AchievementFilter narrows the achievement listing.
type AchievementFilter struct {
	Category string
	Rarity   string
}

func (s *AchievementService) List(filter AchievementFilter, page, limit int) ([]models.Achievement, int64, error) {
	q := s.DB.Model(&models.Achievement{}).Where("is_active = ?", true)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Rarity != "" {
		q = q.Where("rarity = ?", filter.Rarity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var achievements []models.Achievement
	err := q.Order("points ASC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&achievements).Error
	return achievements, total, err
}

func (s *AchievementService) ByCategory(category string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.DB.Where("is_active = ? AND category = ?", true, category).
		Order("points ASC").
		Find(&achievements).Error
	return achievements, err
}

// Rare returns everything above common rarity.
func (s *AchievementService) Rare() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.DB.Where("is_active = ? AND rarity IN ?", true,
		[]string{models.RarityRare, models.RarityEpic, models.RarityLegendary}).
		Order("points DESC").
		Find(&achievements).Error
	return achievements, err
}

func (s *AchievementService) Get(id string) (*models.Achievement, error) {
	var a models.Achievement
	err := s.DB.Where("is_active = ?", true).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *AchievementService) Create(req models.CreateAchievementRequest, iconURL string) (*models.Achievement, error) {
	if err := validateRequirement(req.RequirementType, req.RequirementValue); err != nil {
		return nil, err
	}
	a := models.Achievement{
		Title:                  req.Title,
		Code:                   s.uniqueCode(req.Title),
		Description:            req.Description,
		Category:               req.Category,
		Rarity:                 req.Rarity,
		Points:                 req.Points,
		RequirementType:        req.RequirementType,
		RequirementValue:       req.RequirementValue,
		RequirementDescription: req.RequirementDescription,
		IconURL:                iconURL,
		IsActive:               true,
	}
	if err := s.DB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AchievementService) Update(id string, req models.UpdateAchievementRequest, iconURL string) (*models.Achievement, error) {
	var a models.Achievement
	if err := s.DB.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}

	if req.Title != "" && req.Title != a.Title {
		a.Title = req.Title
		a.Code = s.uniqueCode(req.Title)
	}
	if req.Description != "" {
		a.Description = req.Description
	}
	if req.Category != "" {
		a.Category = req.Category
	}
	if req.Rarity != "" {
		a.Rarity = req.Rarity
	}
	if req.Points != nil {
		a.Points = *req.Points
	}
	if req.RequirementType != "" {
		a.RequirementType = req.RequirementType
	}
	if req.RequirementValue != nil {
		a.RequirementValue = *req.RequirementValue
	}
	if req.RequirementDescription != "" {
		a.RequirementDescription = req.RequirementDescription
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if iconURL != "" {
		a.IconURL = iconURL
	}

	if err := validateRequirement(a.RequirementType, a.RequirementValue); err != nil {
		return nil, err
	}

	if err := s.DB.Save(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AchievementService) SoftDelete(id string) error {
	res := s.DB.Model(&models.Achievement{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAchievementNotFound
	}
	return nil
}

// validateRequirement enforces that threshold kinds carry a positive value.
// Custom requirements carry a description instead; streak has no logic yet
// but is accepted so it can be configured ahead of time.
func validateRequirement(kind string, value int64) error {
	switch kind {
	case models.RequirementPoints, models.RequirementEvents:
		if value <= 0 {
			return fmt.Errorf("requirement_value must be positive for %q requirements", kind)
		}
		return nil
	case models.RequirementStreak, models.RequirementCustom:
		return nil
	default:
		return fmt.Errorf("unknown requirement type %q", kind)
	}
}

func (s *AchievementService) uniqueCode(title string) string {
	base := slug.Make(title)
	var count int64
	s.DB.Model(&models.Achievement{}).Where("code = ?", base).Count(&count)
	if count == 0 {
		return base
	}
	return base + "-" + uuid.NewString()[:8]
}

// ForUser returns the achievements a user has earned, newest first.
func (s *AchievementService) ForUser(userID string) ([]models.UserAchievement, error) {
	var user models.User
	if err := s.DB.Where("is_active = ?", true).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	var earned []models.UserAchievement
	err := s.DB.Where("user_id = ?", userID).
		Preload("Achievement").
		Order("earned_at DESC").
		Find(&earned).Error
	return earned, err
}
