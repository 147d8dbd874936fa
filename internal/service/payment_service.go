package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/payment"
)

type paymentRepository interface {
	List(ctx context.Context, filter models.EmailFilter) ([]models.Payment, error)
	Record(ctx context.Context, payment *models.Payment, enrollmentID primitive.ObjectID) (*models.PaymentRecordResult, error)
}

type paymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (*payment.Intent, error)
}

// PaymentService bridges the payment processor and the payment ledger.
type PaymentService struct {
	repo      paymentRepository
	gateway   paymentGateway
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(repo paymentRepository, gateway paymentGateway, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PaymentService{repo: repo, gateway: gateway, validator: validate, metrics: metrics, logger: logger, now: time.Now}
}

// MinorUnits converts a decimal price into the processor's integer amount, truncating fractions of a cent.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent requests a card payment intent for the price and returns its client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "price must be greater than zero")
	}
	if s.gateway == nil {
		return nil, appErrors.Clone(appErrors.ErrUpstream, "payment processor not configured")
	}

	amount := MinorUnits(req.Price)
	start := time.Now()
	intent, err := s.gateway.CreatePaymentIntent(ctx, amount, uuid.NewString())
	s.metrics.ObservePaymentIntent(err == nil, time.Since(start))
	if err != nil {
		s.logger.Error("payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to create payment intent")
	}

	return &models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// Record stores the payment and removes the enrollment named by its item as one unit.
func (s *PaymentService) Record(ctx context.Context, p *models.Payment) (*models.PaymentRecordResult, error) {
	if err := s.validator.Struct(p); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "payment item is required")
	}
	enrollmentID, err := parseObjectID(p.Item)
	if err != nil {
		return nil, err
	}
	p.ID = primitive.NilObjectID
	if p.Date.IsZero() {
		p.Date = models.PaymentDate{Time: s.now().UTC()}
	}

	result, err := s.repo.Record(ctx, p, enrollmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
	}

	s.logger.Info("payment recorded",
		zap.String("email", p.Email),
		zap.String("item", p.Item),
		zap.Int64("enrollments_removed", result.DeleteResult.DeletedCount))
	return result, nil
}

// List returns payments newest first; an empty email returns all.
func (s *PaymentService) List(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.repo.List(ctx, models.EmailFilter{Email: email})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}
