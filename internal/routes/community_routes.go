package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/controllers"
	"smartpet-backend/internal/middleware"
)

func SetupRoutesCommunity(app *fiber.App, d Deps, s *Services) {
	h := &controllers.CommunityHandler{Communities: s.Communities, Timeout: d.RequestTimeout}
	feed := &controllers.FeedHandler{CommunityFeed: s.CommunityFeed, Timeout: d.RequestTimeout}

	c := app.Group("/communities")
	c.Get("/", h.List)
	c.Post("/", middleware.RequireAuth(), h.Create)
	c.Get("/:id", h.Get)
	c.Get("/:id/posts", feed.GetCommunityPosts)
}
