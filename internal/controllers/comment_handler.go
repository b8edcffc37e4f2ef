package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/config"
	"smartpet-backend/dto"
	"smartpet-backend/internal/middleware"
	"smartpet-backend/internal/services"
)

type CommentHandler struct {
	Comments *services.CommentService
	Timeout  time.Duration
}

// Create godoc
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string                true  "Post ID (hex ObjectID)"
// @Param        body    body      dto.CreateCommentReq  true  "Comment payload"
// @Success      201     {object}  models.Comment
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}
	postID, err := objectIDParam(c, "postId")
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	in := services.NewComment{Content: body.Content, AuthorName: body.AuthorName, AvatarURL: body.AvatarURL}
	if body.ParentCommentID != nil && *body.ParentCommentID != "" {
		pid, err := bson.ObjectIDFromHex(*body.ParentCommentID)
		if err != nil {
			return badRequest(c, "invalid parent_comment_id")
		}
		in.ParentCommentID = &pid
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	com, err := h.Comments.Create(ctx, postID, uid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(com)
}

// List godoc
// @Summary      List comments of a post
// @Description  Newest first with cursor pagination
// @Tags         comments
// @Produce      json
// @Param        postId  path   string  true   "Post ID (hex ObjectID)"
// @Param        limit   query  int     false  "Max items per page" minimum(1) maximum(100) default(20)
// @Param        cursor  query  string  false  "Opaque next-page cursor"
// @Success      200     {object}  dto.ListCommentsResp
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "postId")
	if err != nil {
		return badRequest(c, "invalid post id")
	}
	limit := int64(c.QueryInt("limit", config.DefaultLimitComments))

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	page, err := h.Comments.List(ctx, postID, c.Query("cursor"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ListCommentsResp{
		Items:      page.Items,
		NextCursor: page.NextCursor,
		HasMore:    page.NextCursor != nil,
	})
}

// Delete godoc
// @Summary      Delete own comment
// @Tags         comments
// @Security     BearerAuth
// @Param        commentId  path  string  true  "Comment ID (hex ObjectID)"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}
	id, err := objectIDParam(c, "commentId")
	if err != nil {
		return badRequest(c, "invalid comment id")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Comments.Delete(ctx, id, uid); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
