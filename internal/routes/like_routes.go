package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/controllers"
	"smartpet-backend/internal/middleware"
)

func LikeRoutes(app *fiber.App, d Deps, s *Services) {
	h := &controllers.LikeHandler{Likes: s.Likes, Timeout: d.RequestTimeout}

	app.Post("/posts/:postId/like", middleware.RequireAuth(), h.ToggleLike)
	app.Get("/posts/:postId/likes", h.GetLikes)
}
