package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// AnnouncementHandler handles the front-page announcement routes.
type AnnouncementHandler struct {
	service ports.AnnouncementService
	images  ports.ImageStore
}

func NewAnnouncementHandler(service ports.AnnouncementService, images ports.ImageStore) *AnnouncementHandler {
	return &AnnouncementHandler{service: service, images: images}
}

type createAnnouncementRequest struct {
	Title string `json:"title" form:"title" validate:"required,min=2,max=50"`
	Text  string `json:"text"  form:"text"  validate:"required,min=2,max=700"`
}

type updateAnnouncementRequest struct {
	Title *string `json:"title" form:"title" validate:"omitempty,min=2,max=50"`
	Text  *string `json:"text"  form:"text"  validate:"omitempty,min=2,max=700"`
}

type announcementResponse struct {
	Message      string               `json:"message"`
	Announcement *domain.Announcement `json:"announcement"`
}

type announcementsResponse struct {
	Announcements []domain.Announcement `json:"announcements"`
}

// Create publishes an announcement, optionally with an image. Admin only.
//
// @Summary      Create an announcement
// @Tags         announcements
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title  formData  string  true   "Title"
// @Param        text   formData  string  true   "Body text"
// @Param        image  formData  file    false  "Image"
// @Success      201  {object}  announcementResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req createAnnouncementRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	image, err := saveImage(c, h.images)
	if err != nil {
		return err
	}

	a, err := h.service.Create(c.Request().Context(), domain.Announcement{
		Title: req.Title,
		Text:  req.Text,
		Image: image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, announcementResponse{Message: "Announcement created", Announcement: a})
}

// List returns all announcements, newest first. Public.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Success      200  {object}  announcementsResponse
// @Router       /api/v1/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcementsResponse{Announcements: announcements})
}

// Get returns one announcement. Public.
//
// @Summary      Get an announcement
// @Tags         announcements
// @Produce      json
// @Param        id  path  int  true  "Announcement id"
// @Success      200  {object}  map[string]domain.Announcement
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	a, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Announcement{"announcement": a})
}

// Update changes announcement fields and optionally replaces the image.
// Admin only.
//
// @Summary      Update an announcement
// @Tags         announcements
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int   true   "Announcement id"
// @Param        image  formData  file  false  "Replacement image"
// @Success      200  {object}  announcementResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAnnouncementRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := ports.UpdateAnnouncementInput{
		Title: req.Title,
		Text:  req.Text,
	}

	image, err := saveImage(c, h.images)
	if err != nil {
		return err
	}
	if image != "" {
		input.Image = &image
	}

	a, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, announcementResponse{Message: "Announcement updated", Announcement: a})
}

// Delete removes an announcement and its stored image. Admin only.
//
// @Summary      Delete an announcement
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Announcement id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	a, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	_ = h.images.Remove(ctx, a.Image)

	return c.JSON(http.StatusOK, map[string]string{"message": "Announcement deleted"})
}
