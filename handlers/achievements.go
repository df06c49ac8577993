package handlers

import (
	"strconv"

	"campus-rewards-system/helper"
	"campus-rewards-system/middleware"
	"campus-rewards-system/models"
	"campus-rewards-system/services"
	"campus-rewards-system/utils"

	"github.com/gofiber/fiber/v2"
)

type AchievementHandler struct {
	Achievements *services.AchievementService
}

func NewAchievementHandler(achievements *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{Achievements: achievements}
}

func (h *AchievementHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = services.NormalizePagination(page, limit)

	filter := services.AchievementFilter{
		Category: c.Query("category"),
		Rarity:   c.Query("rarity"),
	}
	achievements, total, err := h.Achievements.List(filter, page, limit)
	if err != nil {
		return failFor(c, err)
	}
	return paginated(c, achievements, len(achievements), total, page, limit)
}

func (h *AchievementHandler) ByCategory(c *fiber.Ctx) error {
	achievements, err := h.Achievements.ByCategory(c.Params("category"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", achievements)
}

func (h *AchievementHandler) Rare(c *fiber.Ctx) error {
	achievements, err := h.Achievements.Rare()
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", achievements)
}

func (h *AchievementHandler) ByUser(c *fiber.Ctx) error {
	earned, err := h.Achievements.ForUser(c.Params("userId"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", earned)
}

func (h *AchievementHandler) Get(c *fiber.Ctx) error {
	achievement, err := h.Achievements.Get(c.Params("id"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", achievement)
}

func (h *AchievementHandler) Create(c *fiber.Ctx) error {
	var req models.CreateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	iconURL, err := h.uploadIcon(c)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to upload icon")
	}

	achievement, err := h.Achievements.Create(req, iconURL)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return ok(c, fiber.StatusCreated, "Achievement created", achievement)
}

func (h *AchievementHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	iconURL, err := h.uploadIcon(c)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to upload icon")
	}

	achievement, err := h.Achievements.Update(c.Params("id"), req, iconURL)
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Achievement updated", achievement)
}

func (h *AchievementHandler) Delete(c *fiber.Ctx) error {
	if err := h.Achievements.SoftDelete(c.Params("id")); err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Achievement deactivated", nil)
}

// Check sweeps the current user's eligibility and returns anything newly
// unlocked.
func (h *AchievementHandler) Check(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	awarded, err := h.Achievements.Sweep(user.ID)
	if err != nil {
		return failFor(c, err)
	}
	msg := "No new achievements"
	if len(awarded) > 0 {
		msg = "New achievements unlocked"
	}
	return ok(c, fiber.StatusOK, msg, awarded)
}

func (h *AchievementHandler) uploadIcon(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("icon")
	if err != nil || file == nil || file.Size == 0 {
		return "", nil
	}
	if !utils.AssetsEnabled() {
		return "", nil
	}
	return utils.UploadAsset(file, "icons")
}
