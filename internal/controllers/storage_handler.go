package controllers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"smartpet-backend/dto"
	"smartpet-backend/internal/storage"
)

type StorageHandler struct {
	Storage *storage.Storage
}

// GetObject godoc
// @Summary      Download a stored image
// @Tags         storage
// @Produce      octet-stream
// @Param        bucket  path  string  true  "Bucket name"
// @Param        key     path  string  true  "Object key"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /storage/{bucket}/{key} [get]
func (h *StorageHandler) GetObject(c *fiber.Ctx) error {
	if c.Params("bucket") != h.Storage.Name() {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "bucket not found"})
	}
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		return badRequest(c, "invalid key")
	}

	// the body is streamed after the handler returns, so no request deadline here
	rc, info, err := h.Storage.Open(c.UserContext(), key)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, info.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.SendStream(rc, int(info.Size))
}
