package handlers

import (
	"time"

	"campus-rewards-system/middleware"
	"campus-rewards-system/models"
	"campus-rewards-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// SetupRoutes wires every route group. Admin routes stack RoleRequired on
// top of AuthRequired; the auth group carries a rate limit.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userService := services.NewUserService(db)
	eventService := services.NewEventService(db)
	achievementService := services.NewAchievementService(db)
	participationService := services.NewParticipationService(db)

	authHandler := NewAuthHandler(db)
	userHandler := NewUserHandler(userService)
	eventHandler := NewEventHandler(eventService, participationService)
	achievementHandler := NewAchievementHandler(achievementService)

	authRequired := middleware.AuthRequired(db)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth", limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authRequired, authHandler.Me)
	auth.Put("/updatedetails", authRequired, authHandler.UpdateDetails)
	auth.Put("/updatepassword", authRequired, authHandler.UpdatePassword)
	auth.Post("/logout", authRequired, authHandler.Logout)

	users := v1.Group("/users", authRequired)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/leaderboard", userHandler.Leaderboard)
	users.Get("/stats/overview", adminOnly, userHandler.Stats)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	events := v1.Group("/events", authRequired)
	events.Get("/", eventHandler.List)
	events.Get("/upcoming", eventHandler.Upcoming)
	events.Get("/department/:department", eventHandler.ByDepartment)
	events.Post("/", adminOnly, eventHandler.Create)
	events.Get("/:id", eventHandler.Get)
	events.Put("/:id", adminOnly, eventHandler.Update)
	events.Delete("/:id", adminOnly, eventHandler.Delete)
	events.Post("/:id/participate", eventHandler.Participate)
	events.Delete("/:id/participate", eventHandler.RemoveParticipation)
	events.Post("/:id/award", adminOnly, eventHandler.Award)

	achievements := v1.Group("/achievements", authRequired)
	achievements.Get("/", achievementHandler.List)
	achievements.Get("/rare", achievementHandler.Rare)
	achievements.Get("/category/:category", achievementHandler.ByCategory)
	achievements.Get("/user/:userId", achievementHandler.ByUser)
	achievements.Post("/check", achievementHandler.Check)
	achievements.Post("/", adminOnly, achievementHandler.Create)
	achievements.Get("/:id", achievementHandler.Get)
	achievements.Put("/:id", adminOnly, achievementHandler.Update)
	achievements.Delete("/:id", adminOnly, achievementHandler.Delete)
}
