package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// TagHandler handles the product tag routes.
type TagHandler struct {
	service ports.TagService
}

func NewTagHandler(service ports.TagService) *TagHandler {
	return &TagHandler{service: service}
}

type createTagRequest struct {
	Title    string `json:"title"     validate:"required,min=2,max=50"`
	ColorHex string `json:"color_hex" validate:"required,hexcolor"`
	Icon     string `json:"icon"      validate:"omitempty,max=50"`
}

type updateTagRequest struct {
	Title    *string `json:"title"     validate:"omitempty,min=2,max=50"`
	ColorHex *string `json:"color_hex" validate:"omitempty,hexcolor"`
	Icon     *string `json:"icon"      validate:"omitempty,max=50"`
}

type tagResponse struct {
	Message string      `json:"message"`
	Tag     *domain.Tag `json:"tag"`
}

type tagsResponse struct {
	Tags []domain.Tag `json:"tags"`
}

// Create adds a tag. Admin only.
//
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTagRequest  true  "Tag details"
// @Success      201   {object}  tagResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var req createTagRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tag, err := h.service.Create(c.Request().Context(), domain.Tag{
		Title:    req.Title,
		ColorHex: req.ColorHex,
		Icon:     req.Icon,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tagResponse{Message: "Tag created", Tag: tag})
}

// List returns all tags. Public.
//
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {object}  tagsResponse
// @Router       /api/v1/tags [get]
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tagsResponse{Tags: tags})
}

// Get returns one tag. Public.
//
// @Summary      Get a tag
// @Tags         tags
// @Produce      json
// @Param        id  path  int  true  "Tag id"
// @Success      200  {object}  map[string]domain.Tag
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/tags/{id} [get]
func (h *TagHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tag, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Tag{"tag": tag})
}

// Update changes tag fields. Admin only.
//
// @Summary      Update a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Tag id"
// @Param        body  body      updateTagRequest  true  "Fields to change"
// @Success      200   {object}  tagResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/tags/{id} [put]
func (h *TagHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateTagRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tag, err := h.service.Update(c.Request().Context(), id, ports.UpdateTagInput{
		Title:    req.Title,
		ColorHex: req.ColorHex,
		Icon:     req.Icon,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tagResponse{Message: "Tag updated", Tag: tag})
}

// Delete removes a tag. Admin only.
//
// @Summary      Delete a tag
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Tag id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/tags/{id} [delete]
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tag deleted"})
}
