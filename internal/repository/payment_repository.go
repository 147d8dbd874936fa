package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
)

// PaymentRepository records payments and removes the paid enrollment in the same unit of work.
type PaymentRepository struct {
	payments        *mongo.Collection
	enrollments     *mongo.Collection
	useTransactions bool
	transact        transactionRunner
	logger          *zap.Logger
}

type transactionRunner func(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error)

// NewPaymentRepository constructs a payment repository. When useTransactions is false the
// insert/delete pair is executed in order with a compensating delete on failure.
func NewPaymentRepository(payments, enrollments *mongo.Collection, useTransactions bool, logger *zap.Logger) *PaymentRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo := &PaymentRepository{payments: payments, enrollments: enrollments, useTransactions: useTransactions, logger: logger}
	repo.transact = repo.withTransaction
	return repo
}

// List returns payments newest first, optionally narrowed to one email.
func (r *PaymentRepository) List(ctx context.Context, filter models.EmailFilter) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return findAll[models.Payment](ctx, r.payments, emailFilter(filter), opts)
}

// Record inserts the payment and deletes the enrollment it pays for.
func (r *PaymentRepository) Record(ctx context.Context, payment *models.Payment, enrollmentID primitive.ObjectID) (*models.PaymentRecordResult, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if r.useTransactions {
		return r.recordInTransaction(ctx, payment, enrollmentID)
	}
	return r.recordWithCompensation(ctx, payment, enrollmentID)
}

func (r *PaymentRepository) recordInTransaction(ctx context.Context, payment *models.Payment, enrollmentID primitive.ObjectID) (*models.PaymentRecordResult, error) {
	out, err := r.transact(ctx, func(ctx context.Context) (interface{}, error) {
		return r.writePair(ctx, payment, enrollmentID)
	})
	if err != nil {
		return nil, fmt.Errorf("record payment transaction: %w", err)
	}
	return out.(*models.PaymentRecordResult), nil
}

func (r *PaymentRepository) withTransaction(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	session, err := r.payments.Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return fn(sc)
	})
}

func (r *PaymentRepository) recordWithCompensation(ctx context.Context, payment *models.Payment, enrollmentID primitive.ObjectID) (*models.PaymentRecordResult, error) {
	result, err := r.writePair(ctx, payment, enrollmentID)
	if err == nil {
		return result, nil
	}

	var delErr *enrollmentDeleteError
	if errors.As(err, &delErr) {
		if _, cerr := r.payments.DeleteOne(ctx, bson.M{"_id": payment.ID}); cerr != nil {
			r.logger.Error("failed to compensate payment insert",
				zap.String("payment_id", payment.ID.Hex()),
				zap.String("enrollment_id", enrollmentID.Hex()),
				zap.Error(cerr))
		}
	}
	return nil, err
}

type enrollmentDeleteError struct {
	err error
}

func (e *enrollmentDeleteError) Error() string {
	return fmt.Sprintf("delete paid enrollment: %v", e.err)
}

func (e *enrollmentDeleteError) Unwrap() error {
	return e.err
}

func (r *PaymentRepository) writePair(ctx context.Context, payment *models.Payment, enrollmentID primitive.ObjectID) (*models.PaymentRecordResult, error) {
	ins, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	del, err := r.enrollments.DeleteOne(ctx, bson.M{"_id": enrollmentID})
	if err != nil {
		return nil, &enrollmentDeleteError{err: err}
	}

	return &models.PaymentRecordResult{
		InsertResult: *insertResult(ins),
		DeleteResult: *deleteResult(del),
	}, nil
}
