package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// FeedbackHandler handles the customer feedback routes.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type createFeedbackRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Feedback string `json:"feedback" validate:"required,min=2,max=800"`
}

type markHandledRequest struct {
	Handled bool `json:"handled"`
}

type feedbackResponse struct {
	Message  string           `json:"message"`
	Feedback *domain.Feedback `json:"feedback"`
}

type feedbacksResponse struct {
	Feedbacks []domain.Feedback `json:"feedbacks"`
}

// Create records feedback from the authenticated account.
//
// @Summary      Leave feedback
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFeedbackRequest  true  "Feedback"
// @Success      201   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/feedbacks [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createFeedbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	fb, err := h.service.Create(c.Request().Context(), ports.CreateFeedbackInput{
		UserID:   principal.UserID,
		Email:    req.Email,
		Feedback: req.Feedback,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, feedbackResponse{Message: "Feedback received", Feedback: fb})
}

// List returns all feedback. Admin only.
//
// @Summary      List feedback
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  feedbacksResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/feedbacks [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	feedbacks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbacksResponse{Feedbacks: feedbacks})
}

// ListByUser returns the feedback left by one account. Owner or admin.
//
// @Summary      List the feedback of an account
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  feedbacksResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/feedbacks/user/{id} [get]
func (h *FeedbackHandler) ListByUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	feedbacks, err := h.service.ListByUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbacksResponse{Feedbacks: feedbacks})
}

// MarkHandled flips the handled flag on one feedback. Admin only.
//
// @Summary      Mark feedback handled
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Feedback id"
// @Param        body  body      markHandledRequest  true  "Handled flag"
// @Success      200   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/feedbacks/{id} [put]
func (h *FeedbackHandler) MarkHandled(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req markHandledRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	fb, err := h.service.MarkHandled(c.Request().Context(), id, req.Handled)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbackResponse{Message: "Feedback updated", Feedback: fb})
}

// Delete removes feedback. Admin only.
//
// @Summary      Delete feedback
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Feedback id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/feedbacks/{id} [delete]
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Feedback deleted"})
}
