package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "smartpet-backend/docs"

	"smartpet-backend/config"
	"smartpet-backend/dto"
	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/middleware"
	"smartpet-backend/internal/realtime"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/services"
	"smartpet-backend/internal/storage"
)

// Deps is everything the HTTP layer is built from.
type Deps struct {
	Store          *repository.Store
	Storage        *storage.Storage
	Cache          *cache.QueryCache
	Hub            *realtime.Hub
	Log            *zap.Logger
	JWTSecret      string
	CORSOrigins    string
	RequestTimeout time.Duration
	KeepAlive      time.Duration
}

type Services struct {
	Feed          *services.FeedService
	Search        *services.SearchService
	CommunityFeed *services.CommunityFeedService
	Posts         *services.PostService
	Likes         *services.LikeService
	Comments      *services.CommentService
	Communities   *services.CommunityService
	Profiles      *services.ProfileService
}

func NewServices(d Deps) *Services {
	return &Services{
		Feed:          services.NewFeedService(d.Store, d.Cache, d.Log),
		Search:        services.NewSearchService(d.Store, d.Cache),
		CommunityFeed: services.NewCommunityFeedService(d.Store, d.Cache),
		Posts:         services.NewPostService(d.Store, d.Storage, d.Cache, d.Log),
		Likes:         services.NewLikeService(d.Store, d.Cache),
		Comments:      services.NewCommentService(d.Store, d.Cache),
		Communities:   services.NewCommunityService(d.Store, d.Cache),
		Profiles:      services.NewProfileService(d.Store, d.Log),
	}
}

// NewApp assembles the Fiber app with every route mounted.
func NewApp(d Deps, s *Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "smartpet",
		BodyLimit:    config.MaxUploadBytes,
		ErrorHandler: ErrorHandler(d.Log),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(d.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	SetupRoutesStorage(app, d)

	app.Use(middleware.JWTSubject(d.JWTSecret))

	SetupRoutesPost(app, d, s)
	CommentRoutes(app, d, s)
	LikeRoutes(app, d, s)
	SetupRoutesCommunity(app, d, s)
	SetupRoutesProfile(app, d, s)
	return app
}

// ErrorHandler renders every unhandled error as dto.ErrorResponse.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, msg = fe.Code, fe.Message
		} else {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
}
