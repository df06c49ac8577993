package handlers

import (
	"errors"

	"campus-rewards-system/models"
	"campus-rewards-system/services"

	"github.com/gofiber/fiber/v2"
)

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(models.SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Success: false,
		Message: message,
	})
}

func paginated(c *fiber.Ctx, data interface{}, count int, total int64, page, limit int) error {
	return c.JSON(models.PaginatedResponse{
		Success: true,
		Count:   count,
		Total:   total,
		Page:    page,
		Pages:   services.TotalPages(total, limit),
		Data:    data,
	})
}

// failFor maps service errors to HTTP statuses: 404 for missing aggregates,
// 409 for participation conflicts, 500 for everything else.
func failFor(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrAchievementNotFound),
		errors.Is(err, services.ErrNotParticipating):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyParticipating),
		errors.Is(err, services.ErrEventFull),
		errors.Is(err, services.ErrEventConcluded),
		errors.Is(err, services.ErrEventInactive):
		return fail(c, fiber.StatusConflict, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}
