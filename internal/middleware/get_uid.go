package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UIDFromLocals returns the user id set by JWTSubject.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid := OptionalUID(c)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

// OptionalUID is the caller's id, or "" for anonymous requests.
func OptionalUID(c *fiber.Ctx) string {
	uid, _ := c.Locals(LocalUserID).(string)
	return uid
}
