package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/controllers"
)

// SetupRoutesStorage serves stored images publicly, ahead of token checks.
func SetupRoutesStorage(app *fiber.App, d Deps) {
	h := &controllers.StorageHandler{Storage: d.Storage}
	app.Get("/storage/:bucket/:key", h.GetObject)
}
