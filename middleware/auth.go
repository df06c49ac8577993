package middleware

import (
	"errors"
	"strings"

	"campus-rewards-system/helper"
	"campus-rewards-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRequired validates the bearer token, loads the account, and rejects
// deactivated users. The loaded user is attached to the request context so
// handlers never re-fetch it.
func AuthRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := strings.TrimSpace(c.Get("Authorization"))
		if bearer == "" {
			return unauthorized(c, "Authorization token missing")
		}
		if len(bearer) < 7 || !strings.EqualFold(bearer[:7], "Bearer ") {
			return unauthorized(c, "Invalid authorization format, expected Bearer token")
		}
		token := strings.TrimSpace(bearer[7:])

		claims, err := helper.ValidateToken(token)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "Account no longer exists")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Success: false,
				Message: "Failed to load account",
			})
		}
		if !user.IsActive {
			return unauthorized(c, "Account has been deactivated")
		}

		c.Locals("user", &user)
		c.Locals("user_id", user.ID)
		c.Locals("role", user.Role)
		return c.Next()
	}
}

// RoleRequired gates a route to the given roles. Must run after AuthRequired.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{
			Success: false,
			Message: "You do not have permission to access this resource",
		})
	}
}

// CurrentUser returns the account loaded by AuthRequired.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{
		Success: false,
		Message: msg,
	})
}
