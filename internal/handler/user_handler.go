package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type userService interface {
	List(ctx context.Context) ([]models.User, error)
	ListInstructors(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (interface{}, error)
	IsAdmin(ctx context.Context, requester, email string) (*models.AdminCheck, error)
	IsInstructor(ctx context.Context, requester, email string) (*models.InstructorCheck, error)
	SetRole(ctx context.Context, id string, role models.UserRole) (*models.UpdateResult, error)
}

// UserHandler manages user endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(service userService) *UserHandler {
	return &UserHandler{service: service}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// ListInstructors godoc
// @Summary List instructors
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /instructorusers [get]
func (h *UserHandler) ListInstructors(c *gin.Context) {
	users, err := h.service.ListInstructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// Create godoc
// @Summary Register a user
// @Description Inserts the user unless the email already exists, in which case a message is returned instead.
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body models.User true "User"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} response.ErrorEnvelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid user payload"))
		return
	}
	result, err := h.service.Create(c.Request.Context(), &user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// IsAdmin godoc
// @Summary Check admin role
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} models.AdminCheck
// @Failure 401 {object} response.ErrorEnvelope
// @Router /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c *gin.Context) {
	result, err := h.service.IsAdmin(c.Request.Context(), requesterEmail(c), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// IsInstructor godoc
// @Summary Check instructor role
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email"
// @Success 200 {object} models.InstructorCheck
// @Failure 401 {object} response.ErrorEnvelope
// @Router /users/instructor/{email} [get]
func (h *UserHandler) IsInstructor(c *gin.Context) {
	result, err := h.service.IsInstructor(c.Request.Context(), requesterEmail(c), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// MakeAdmin godoc
// @Summary Grant the admin role
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /users/admin/{id} [patch]
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

// MakeInstructor godoc
// @Summary Grant the instructor role
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /users/instructor/{id} [patch]
func (h *UserHandler) MakeInstructor(c *gin.Context) {
	h.setRole(c, models.RoleInstructor)
}

func (h *UserHandler) setRole(c *gin.Context, role models.UserRole) {
	result, err := h.service.SetRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
