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

type EventHandler struct {
	Events        *services.EventService
	Participation *services.ParticipationService
}

func NewEventHandler(events *services.EventService, participation *services.ParticipationService) *EventHandler {
	return &EventHandler{Events: events, Participation: participation}
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = services.NormalizePagination(page, limit)

	filter := services.EventFilter{
		Department: c.Query("department"),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
	}
	events, total, err := h.Events.List(filter, page, limit)
	if err != nil {
		return failFor(c, err)
	}
	return paginated(c, events, len(events), total, page, limit)
}

func (h *EventHandler) Upcoming(c *fiber.Ctx) error {
	events, err := h.Events.Upcoming()
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", events)
}

func (h *EventHandler) ByDepartment(c *fiber.Ctx) error {
	events, err := h.Events.ByDepartment(c.Params("department"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", events)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	event, err := h.Events.Get(c.Params("id"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "", event)
}

// Create accepts either JSON or multipart form data; multipart may carry a
// banner image that is pushed to the asset bucket.
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	bannerURL, err := h.uploadBanner(c)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to upload banner")
	}

	event, err := h.Events.Create(req, bannerURL)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return ok(c, fiber.StatusCreated, "Event created", event)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	bannerURL, err := h.uploadBanner(c)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to upload banner")
	}

	event, err := h.Events.Update(c.Params("id"), req, bannerURL)
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Event updated", event)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.Events.SoftDelete(c.Params("id")); err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Event deactivated", nil)
}

// Participate joins the current user to the event.
func (h *EventHandler) Participate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	part, err := h.Participation.JoinEvent(user.ID, c.Params("id"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Participation recorded", part)
}

// RemoveParticipation withdraws the current user and refunds the points
// recorded at join time.
func (h *EventHandler) RemoveParticipation(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	updated, err := h.Participation.LeaveEvent(user.ID, c.Params("id"))
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Participation removed", updated)
}

// Award lets an admin grant a point value to a user for this event.
func (h *EventHandler) Award(c *fiber.Ctx) error {
	var req models.AwardPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, helper.FormatValidationErrors(err))
	}

	part, newAchievements, err := h.Participation.AwardPoints(c.Params("id"), req.UserID, req.Points)
	if err != nil {
		return failFor(c, err)
	}
	return ok(c, fiber.StatusOK, "Points awarded", fiber.Map{
		"participation":    part,
		"new_achievements": newAchievements,
	})
}

func (h *EventHandler) uploadBanner(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("banner")
	if err != nil || file == nil || file.Size == 0 {
		return "", nil
	}
	if !utils.AssetsEnabled() {
		return "", nil
	}
	return utils.UploadAsset(file, "banners")
}
