package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type tokenIssuer interface {
	IssueToken(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error)
}

// AuthHandler issues access tokens.
type AuthHandler struct {
	service tokenIssuer
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(service tokenIssuer) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Signs the submitted identity. Credentials are verified by the external identity provider before this call.
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.TokenRequest true "Identity"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid token payload"))
		return
	}
	resp, err := h.service.IssueToken(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}
