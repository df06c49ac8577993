package handlers

import (
	"errors"
	"log"
	"strings"

	"campus-rewards-system/helper"
	"campus-rewards-system/middleware"
	"campus-rewards-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// tokenPayload is the auth response body: token plus the public user.
type tokenPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register self-registers a student account. The role is always student;
// admins are promoted through the admin user update route.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return fail(c, fiber.StatusConflict, "An account with this email already exists")
	}
	if req.StudentID != "" {
		h.DB.Model(&models.User{}).Where("student_id = ?", req.StudentID).Count(&count)
		if count > 0 {
			return fail(c, fiber.StatusConflict, "An account with this student ID already exists")
		}
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	user := models.User{
		Name:       req.Name,
		Email:      email,
		Password:   hash,
		Role:       models.RoleStudent,
		Department: req.Department,
		Year:       req.Year,
		Level:      1,
		IsActive:   true,
	}
	if req.StudentID != "" {
		sid := req.StudentID
		user.StudentID = &sid
	}

	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("[Auth] Failed to create user: %v", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	token, err := helper.GenerateToken(&user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return ok(c, fiber.StatusCreated, "Account created", tokenPayload{Token: token, User: &user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	var user models.User
	err := h.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	if !helper.CheckPasswordHash(req.Password, user.Password) {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return fail(c, fiber.StatusUnauthorized, "Account has been deactivated")
	}

	token, err := helper.GenerateToken(&user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return ok(c, fiber.StatusOK, "Login successful", tokenPayload{Token: token, User: &user})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", middleware.CurrentUser(c))
}

func (h *AuthHandler) UpdateDetails(c *fiber.Ctx) error {
	var req models.UpdateDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	user := middleware.CurrentUser(c)

	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			var count int64
			h.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
			if count > 0 {
				return fail(c, fiber.StatusConflict, "An account with this email already exists")
			}
			user.Email = email
		}
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Year != 0 {
		user.Year = req.Year
	}

	if err := h.DB.Save(user).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update details")
	}
	return ok(c, fiber.StatusOK, "Details updated", user)
}

// UpdatePassword verifies the current password and issues a fresh token with
// the new one.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var req models.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	user := middleware.CurrentUser(c)
	if !helper.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return fail(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := helper.HashPassword(req.NewPassword)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	user.Password = hash
	if err := h.DB.Save(user).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	token, err := helper.GenerateToken(user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to generate token")
	}
	return ok(c, fiber.StatusOK, "Password updated", tokenPayload{Token: token, User: user})
}

// Logout is stateless: tokens are not tracked server side, the client simply
// discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "Logged out", nil)
}
