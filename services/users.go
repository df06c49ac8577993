package services

import (
	"errors"

	"campus-rewards-system/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

var titleCaser = cases.Title(language.English)

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role       string
	Department string
}

func (s *UserService) List(filter UserFilter, page, limit int) ([]models.User, int64, error) {
	q := s.DB.Model(&models.User{}).Where("is_active = ?", true)
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := q.Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&users).Error
	return users, total, err
}

// Leaderboard returns the top users by points, optionally scoped to one
// department. Department names are title-cased for display.
func (s *UserService) Leaderboard(department string, limit int) ([]models.LeaderboardEntry, error) {
	q := s.DB.Model(&models.User{}).
		Where("is_active = ? AND role = ?", true, models.RoleStudent)
	if department != "" {
		q = q.Where("department = ?", department)
	}

	var entries []models.LeaderboardEntry
	if err := q.Select("id, name, department, total_points, level").
		Order("total_points DESC").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Department = titleCaser.String(entries[i].Department)
	}
	return entries, nil
}

// Get returns one active user with achievements and participations populated.
func (s *UserService) Get(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("is_active = ?", true).
		Preload("Achievements.Achievement").
		Preload("Participations.Event").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) AdminUpdate(id string, req models.AdminUpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Year != 0 {
		user.Year = req.Year
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) SoftDelete(id string) error {
	res := s.DB.Model(&models.User{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// StatsOverview aggregates platform-wide counters for the admin dashboard.
type StatsOverview struct {
	TotalStudents       int64   `json:"total_students"`
	TotalAdmins         int64   `json:"total_admins"`
	TotalEvents         int64   `json:"total_events"`
	TotalAchievements   int64   `json:"total_achievements"`
	TotalParticipations int64   `json:"total_participations"`
	TotalPointsAwarded  int64   `json:"total_points_awarded"`
	AveragePoints       float64 `json:"average_points"`
}

func (s *UserService) Stats() (*StatsOverview, error) {
	var out StatsOverview

	if err := s.DB.Model(&models.User{}).
		Where("is_active = ? AND role = ?", true, models.RoleStudent).
		Count(&out.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).
		Where("is_active = ? AND role = ?", true, models.RoleAdmin).
		Count(&out.TotalAdmins).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Event{}).
		Where("is_active = ?", true).
		Count(&out.TotalEvents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Achievement{}).
		Where("is_active = ?", true).
		Count(&out.TotalAchievements).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Participation{}).
		Count(&out.TotalParticipations).Error; err != nil {
		return nil, err
	}

	type row struct {
		Sum int64
		Avg float64
	}
	var r row
	if err := s.DB.Model(&models.User{}).
		Where("is_active = ? AND role = ?", true, models.RoleStudent).
		Select("COALESCE(SUM(total_points),0) AS sum, COALESCE(AVG(total_points),0) AS avg").
		Scan(&r).Error; err != nil {
		return nil, err
	}
	out.TotalPointsAwarded = r.Sum
	out.AveragePoints = r.Avg

	return &out, nil
}
