package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/controllers"
	"smartpet-backend/internal/middleware"
)

func SetupRoutesPost(app *fiber.App, d Deps, s *Services) {
	feed := &controllers.FeedHandler{
		Feed:          s.Feed,
		Search:        s.Search,
		CommunityFeed: s.CommunityFeed,
		Timeout:       d.RequestTimeout,
	}
	posts := &controllers.PostHandler{Posts: s.Posts, Timeout: d.RequestTimeout}
	stream := &controllers.StreamHandler{Hub: d.Hub, KeepAlive: d.KeepAlive}

	p := app.Group("/posts")

	// static paths before /:postId
	p.Get("/", feed.GetFeed)
	p.Get("/search", feed.SearchPosts)
	p.Get("/stream", stream.StreamPosts)
	p.Post("/", middleware.RequireAuth(), posts.CreatePost)

	p.Get("/:postId", posts.GetPost)
	p.Delete("/:postId", middleware.RequireAuth(), posts.DeletePost)
}
