package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/controllers"
	"smartpet-backend/internal/middleware"
)

func SetupRoutesProfile(app *fiber.App, d Deps, s *Services) {
	h := &controllers.ProfileHandler{Profiles: s.Profiles, Timeout: d.RequestTimeout}

	p := app.Group("/profile", middleware.RequireAuth())
	p.Get("/", h.GetProfile)
	p.Patch("/", h.UpdateProfile)
	p.Get("/badges", h.GetBadges)
}
