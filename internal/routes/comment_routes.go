package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/controllers"
	"smartpet-backend/internal/middleware"
)

func CommentRoutes(app *fiber.App, d Deps, s *Services) {
	h := &controllers.CommentHandler{Comments: s.Comments, Timeout: d.RequestTimeout}

	// GET /posts/:postId/comments?limit=20&cursor=...
	app.Get("/posts/:postId/comments", h.List)
	app.Post("/posts/:postId/comments", middleware.RequireAuth(), h.Create)

	// only the author may delete
	app.Delete("/comments/:commentId", middleware.RequireAuth(), h.Delete)
}
