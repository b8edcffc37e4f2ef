package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"smartpet-backend/dto"
	"smartpet-backend/internal/services"
)

type FeedHandler struct {
	Feed          *services.FeedService
	Search        *services.SearchService
	CommunityFeed *services.CommunityFeedService
	Timeout       time.Duration
}

// GetFeed godoc
// @Summary      Main feed
// @Description  Every post, newest first, with like and comment counts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.ListResp[models.FeedPost]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	feed, err := h.Feed.Feed(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResp(feed))
}

// SearchPosts godoc
// @Summary      Search posts
// @Description  All predicates are AND-ed; blank ones are ignored. Text filters are case-insensitive substrings.
// @Tags         posts
// @Produce      json
// @Param        breed       query  string  false  "Breed contains"
// @Param        location    query  string  false  "Location contains"
// @Param        size        query  string  false  "Size"  Enums(Small, Medium, Large, Extra Large)
// @Param        status      query  string  false  "Adoption status"  Enums(Available, Pending, Adopted)
// @Param        min_age     query  int     false  "Minimum age in months (inclusive)"
// @Param        max_age     query  int     false  "Maximum age in months (inclusive)"
// @Param        vaccinated  query  bool    false  "Vaccination status"
// @Param        q           query  string  false  "Name or description contains"
// @Success      200  {object}  dto.ListResp[models.Post]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/search [get]
func (h *FeedHandler) SearchPosts(c *fiber.Ctx) error {
	f, err := ParsePostFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	posts, err := h.Search.Search(ctx, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewListResp(posts))
}

// GetCommunityPosts godoc
// @Summary      Community feed
// @Tags         communities
// @Produce      json
// @Param        id   path      string  true  "Community ID (hex ObjectID)"
// @Success      200  {object}  services.CommunityFeed
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /communities/{id}/posts [get]
func (h *FeedHandler) GetCommunityPosts(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid community id")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	feed, err := h.CommunityFeed.Feed(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(feed)
}
