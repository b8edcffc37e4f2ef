package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartpet-backend/dto"
	"smartpet-backend/internal/middleware"
	"smartpet-backend/internal/services"
)

type CommunityHandler struct {
	Communities *services.CommunityService
	Timeout     time.Duration
}

// Create godoc
// @Summary      Create a community
// @Tags         communities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCommunityReq  true  "Community"
// @Success      201   {object}  models.Community
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /communities [post]
func (h *CommunityHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}
	var body dto.CreateCommunityReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	com, err := h.Communities.Create(ctx, uid, body.Name, body.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(com)
}

// List godoc
// @Summary      List communities
// @Tags         communities
// @Produce      json
// @Success      200  {object}  dto.ListResp[models.Community]
// @Router       /communities [get]
func (h *CommunityHandler) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	list, err := h.Communities.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResp(list))
}

// Get godoc
// @Summary      Get a community
// @Tags         communities
// @Produce      json
// @Param        id   path      string  true  "Community ID (hex ObjectID)"
// @Success      200  {object}  models.Community
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /communities/{id} [get]
func (h *CommunityHandler) Get(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid community id")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	com, err := h.Communities.Get(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(com)
}
