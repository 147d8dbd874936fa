package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

type paymentService interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	Record(ctx context.Context, payment *models.Payment) (*models.PaymentRecordResult, error)
	List(ctx context.Context, email string) ([]models.Payment, error)
}

// PaymentHandler exposes the payment endpoints.
type PaymentHandler struct {
	service paymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(service paymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List godoc
// @Summary List payments, newest first
// @Tags Payments
// @Produce json
// @Param email query string false "Student email"
// @Success 200 {array} models.Payment
// @Router /succefulpay [get]
func (h *PaymentHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// CreateIntent godoc
// @Summary Create a card payment intent
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PaymentIntentRequest true "Price"
// @Success 200 {object} models.PaymentIntentResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payment intent payload"))
		return
	}
	resp, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// Record godoc
// @Summary Record a completed payment
// @Description Inserts the payment and deletes the enrollment named by item as one unit.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.Payment true "Payment"
// @Success 200 {object} models.PaymentRecordResult
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payment payload"))
		return
	}
	result, err := h.service.Record(c.Request.Context(), &payment)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
