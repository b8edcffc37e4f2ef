package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartpet-backend/dto"
	"smartpet-backend/internal/middleware"
	"smartpet-backend/internal/services"
)

type LikeHandler struct {
	Likes   *services.LikeService
	Timeout time.Duration
}

// ToggleLike godoc
// @Summary      Toggle like on a post
// @Description  Likes the post, or removes the caller's like if present
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post ID (hex ObjectID)"
// @Success      200     {object}  services.LikeStatus
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/like [post]
func (h *LikeHandler) ToggleLike(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}
	id, err := objectIDParam(c, "postId")
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	st, err := h.Likes.Toggle(ctx, id, uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}

// GetLikes godoc
// @Summary      Like count of a post
// @Tags         likes
// @Produce      json
// @Param        postId  path      string  true  "Post ID (hex ObjectID)"
// @Success      200     {object}  services.LikeStatus
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/likes [get]
func (h *LikeHandler) GetLikes(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "postId")
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	st, err := h.Likes.Status(ctx, id, middleware.OptionalUID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(st)
}
