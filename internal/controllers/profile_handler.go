package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartpet-backend/dto"
	"smartpet-backend/internal/middleware"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/services"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
	Timeout  time.Duration
}

// GetProfile godoc
// @Summary      Caller's profile
// @Description  Created with defaults on first view
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.UserProfile
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	u, err := h.Profiles.Get(ctx, uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(u)
}

// UpdateProfile godoc
// @Summary      Update caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.UpdateProfileReq  true  "Fields to change"
// @Success      200   {object}  models.UserProfile
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /profile [patch]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}
	var body dto.UpdateProfileReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	u, err := h.Profiles.Update(ctx, uid, models.ProfilePatch{
		Bio:       body.Bio,
		Location:  body.Location,
		Favorites: body.Favorites,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(u)
}

// GetBadges godoc
// @Summary      Caller's badges
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListResp[models.Badge]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /profile/badges [get]
func (h *ProfileHandler) GetBadges(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	badges, err := h.Profiles.ListBadges(ctx, uid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResp(badges))
}
