package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type feedbackService interface {
	List(ctx context.Context) ([]models.Feedback, error)
	Create(ctx context.Context, feedback models.Feedback) (*models.InsertResult, error)
}

// FeedbackHandler exposes the free-form feedback endpoints.
type FeedbackHandler struct {
	service feedbackService
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(service feedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create godoc
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body object true "Free-form feedback"
// @Success 200 {object} models.InsertResult
// @Router /feedback [post]
func (h *FeedbackHandler) Create(c *gin.Context) {
	var feedback models.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}
	result, err := h.service.Create(c.Request.Context(), feedback)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// List godoc
// @Summary List feedback
// @Tags Feedback
// @Produce json
// @Success 200 {array} object
// @Router /getfeedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}
