package handlers

import (
	"strconv"

	"campus-rewards-system/helper"
	"campus-rewards-system/models"
	"campus-rewards-system/services"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = services.NormalizePagination(page, limit)

	filter := services.UserFilter{
		Role:       c.Query("role"),
		Department: c.Query("department"),
	}
	users, total, err := h.Users.List(filter, page, limit)
	if err != nil {
		return failFor(c, err)
	}
	return paginated(c, users, len(users), total, page, limit)
}

func (h *UserHandler) Leaderboard(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	_, limit = services.NormalizePagination(1, limit)

	entries, err := h.Users.Leaderboard(c.Query("department"), limit)
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", entries)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.Users.Get(c.Params("id"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req models.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	user, err := h.Users.AdminUpdate(c.Params("id"), req)
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "User updated", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.Users.SoftDelete(c.Params("id")); err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "User deactivated", nil)
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Users.Stats()
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", stats)
}
