package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type enrollmentService interface {
	List(ctx context.Context) ([]models.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
	Get(ctx context.Context, id string) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) (*models.EnrollmentCreated, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// EnrollmentHandler exposes selected-class endpoints.
type EnrollmentHandler struct {
	service enrollmentService
}

// NewEnrollmentHandler constructs an EnrollmentHandler.
func NewEnrollmentHandler(service enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// ListByEmail godoc
// @Summary List a student's selected classes
// @Tags Enrollments
// @Produce json
// @Param email query string false "Student email"
// @Success 200 {array} models.Enrollment
// @Router /selectstudent [get]
func (h *EnrollmentHandler) ListByEmail(c *gin.Context) {
	items, err := h.service.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// List godoc
// @Summary List all selected classes
// @Tags Enrollments
// @Produce json
// @Success 200 {array} models.Enrollment
// @Router /selectclass [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get a selected class
// @Description Returns name, price and email only, or null when nothing matches.
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} models.Enrollment
// @Failure 400 {object} response.ErrorEnvelope
// @Router /selectclass/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Create godoc
// @Summary Select a class
// @Description When menuItemId names an approved class its enrolled counter is incremented.
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body models.Enrollment true "Enrollment"
// @Success 200 {object} models.EnrollmentCreated
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /selectclasses [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var enrollment models.Enrollment
	if err := c.ShouldBindJSON(&enrollment); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}
	result, err := h.service.Create(c.Request.Context(), &enrollment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Delete godoc
// @Summary Remove a selected class
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} response.ErrorEnvelope
// @Router /selectclass/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	result, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
