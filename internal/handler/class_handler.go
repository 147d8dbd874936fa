package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type classService interface {
	ListPending(ctx context.Context) ([]models.Class, error)
	GetPending(ctx context.Context, id string) (*models.Class, error)
	CreatePending(ctx context.Context, class *models.Class) (*models.InsertResult, error)
	Approve(ctx context.Context, class *models.Class) (*models.InsertResult, error)
	ListApproved(ctx context.Context) ([]models.Class, error)
	GetApproved(ctx context.Context, id string) (*models.Class, error)
}

// ClassHandler exposes pending and approved class endpoints.
type ClassHandler struct {
	service classService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(service classService) *ClassHandler {
	return &ClassHandler{service: service}
}

// ListPending godoc
// @Summary List submitted classes
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /classes [get]
func (h *ClassHandler) ListPending(c *gin.Context) {
	classes, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// GetPending godoc
// @Summary Get a submitted class
// @Description Returns null when no class matches.
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Failure 400 {object} response.ErrorEnvelope
// @Router /classes/{id} [get]
func (h *ClassHandler) GetPending(c *gin.Context) {
	class, err := h.service.GetPending(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// CreatePending godoc
// @Summary Submit a class for approval
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body models.Class true "Class"
// @Success 200 {object} models.InsertResult
// @Router /classes [post]
func (h *ClassHandler) CreatePending(c *gin.Context) {
	class, ok := bindClass(c)
	if !ok {
		return
	}
	result, err := h.service.CreatePending(c.Request.Context(), class)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Approve godoc
// @Summary Publish a class to the approved catalogue
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body models.Class true "Class"
// @Success 200 {object} models.InsertResult
// @Router /approveclasses [post]
func (h *ClassHandler) Approve(c *gin.Context) {
	class, ok := bindClass(c)
	if !ok {
		return
	}
	result, err := h.service.Approve(c.Request.Context(), class)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ListApproved godoc
// @Summary List approved classes
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /appreveclasses [get]
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// GetApproved godoc
// @Summary Get an approved class
// @Description Returns null when no class matches.
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Failure 400 {object} response.ErrorEnvelope
// @Router /appreveclasses/{id} [get]
func (h *ClassHandler) GetApproved(c *gin.Context) {
	class, err := h.service.GetApproved(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

func bindClass(c *gin.Context) (*models.Class, bool) {
	var class models.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return nil, false
	}
	return &class, true
}
