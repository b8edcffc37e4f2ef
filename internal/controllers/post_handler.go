package controllers

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/multierr"

	"smartpet-backend/dto"
	"smartpet-backend/internal/middleware"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/services"
)

type PostHandler struct {
	Posts   *services.PostService
	Timeout time.Duration
}

// GetPost godoc
// @Summary      Post detail
// @Description  One post with the vaccination proof split out of health_info
// @Tags         posts
// @Produce      json
// @Param        postId  path      string  true  "Post ID (hex ObjectID)"
// @Success      200     {object}  services.PostDetail
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId} [get]
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "postId")
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	d, err := h.Posts.Detail(ctx, id, middleware.OptionalUID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d)
}

// DeletePost godoc
// @Summary      Delete own post
// @Description  Removes comments, likes and stored images, then the post. Image removal failures are reported, not fatal.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post ID (hex ObjectID)"
// @Success      200     {object}  dto.DeletePostResp
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
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

	rep, err := h.Posts.Delete(ctx, id, uid)
	if err != nil {
		return writeError(c, err)
	}
	resp := dto.DeletePostResp{
		Deleted:         true,
		CommentsDeleted: rep.CommentsDeleted,
		VotesDeleted:    rep.VotesDeleted,
		ObjectsRemoved:  rep.ObjectsRemoved,
	}
	if resp.ObjectsRemoved == nil {
		resp.ObjectsRemoved = []string{}
	}
	for _, e := range multierr.Errors(rep.StorageErr) {
		resp.StorageErrors = append(resp.StorageErrors, e.Error())
	}
	return c.JSON(resp)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        form               formData  dto.CreatePostForm  true   "Post fields"
// @Param        image              formData  file                true   "Main photo"
// @Param        additional_photos  formData  file                false  "Extra photos"
// @Param        vaccination_proof  formData  file                false  "Required when vaccination_status is true"
// @Success      201  {object}  models.Post
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing user id in context"})
	}
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "invalid multipart form")
	}

	in, err := createPostInput(form.Value)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	open := func(fh *multipart.FileHeader) (*services.Upload, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		opened = append(opened, f)
		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}
		return &services.Upload{Filename: fh.Filename, ContentType: ct, Body: f}, nil
	}

	if fhs := form.File["image"]; len(fhs) > 0 {
		if in.Image, err = open(fhs[0]); err != nil {
			return badRequest(c, "unreadable image")
		}
	}
	if fhs := form.File["vaccination_proof"]; len(fhs) > 0 {
		if in.VaccinationProof, err = open(fhs[0]); err != nil {
			return badRequest(c, "unreadable vaccination proof")
		}
	}
	for _, fh := range form.File["additional_photos"] {
		u, err := open(fh)
		if err != nil {
			return badRequest(c, "unreadable photo")
		}
		in.AdditionalPhotos = append(in.AdditionalPhotos, *u)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	p, err := h.Posts.Create(ctx, uid, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func createPostInput(values map[string][]string) (services.CreatePostInput, error) {
	get := func(name string) string {
		if v := values[name]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	in := services.CreatePostInput{
		Name:       get("name"),
		Content:    get("content"),
		Breed:      get("breed"),
		Location:   get("location"),
		Size:       models.PetSize(get("size")),
		HealthInfo: get("health_info"),
		Status:     models.AdoptionStatus(get("status")),
	}
	if v := get("temperament"); v != "" {
		in.Temperament = strings.Split(v, ",")
	}
	if v := get("age"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("age must be an integer")
		}
		in.Age = &n
	}
	if v := get("vaccination_status"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, fmt.Errorf("vaccination_status must be true or false")
		}
		in.VaccinationStatus = &b
	}
	if v := get("community_id"); v != "" {
		id, err := bson.ObjectIDFromHex(v)
		if err != nil {
			return in, fmt.Errorf("invalid community_id")
		}
		in.CommunityID = &id
	}
	return in, nil
}
