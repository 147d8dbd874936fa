package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/noah-isme/artspires-api/internal/models"
)

func TestPaymentRepository(t *testing.T) {
	mt := newMockT(t)

	mt.Run("list sorted newest first", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll, mt.Coll, false, zap.NewNop())
		newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "s@x.com"}, {Key: "date", Value: newer}, {Key: "item", Value: "a"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "s@x.com"}, {Key: "date", Value: older}, {Key: "item", Value: "b"}},
		))
		mt.ClearEvents()

		payments, err := repo.List(context.Background(), models.EmailFilter{Email: "s@x.com"})
		require.NoError(mt, err)
		require.Len(mt, payments, 2)
		assert.True(mt, payments[0].Date.After(payments[1].Date.Time))

		mt.ClearEvents()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		_, err = repo.List(context.Background(), models.EmailFilter{Email: "s@x.com"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(-1), sortValue(mt, "date"))
	})

	mt.Run("record without transaction", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll, mt.Coll, false, zap.NewNop())
		enrollmentID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		payment := &models.Payment{Email: "s@x.com", Price: 49.99, Item: enrollmentID.Hex(), Date: models.PaymentDate{Time: time.Now().UTC()}}
		res, err := repo.Record(context.Background(), payment, enrollmentID)
		require.NoError(mt, err)
		assert.False(mt, payment.ID.IsZero())
		assert.Equal(mt, payment.ID, res.InsertResult.InsertedID)
		assert.Equal(mt, int64(1), res.DeleteResult.DeletedCount)
	})

	mt.Run("record compensates when enrollment delete fails", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll, mt.Coll, false, zap.NewNop())
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value", Name: "BadValue"}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)
		mt.ClearEvents()

		enrollmentID := primitive.NewObjectID()
		payment := &models.Payment{Item: enrollmentID.Hex(), Date: models.PaymentDate{Time: time.Now().UTC()}}
		_, err := repo.Record(context.Background(), payment, enrollmentID)
		require.Error(mt, err)

		var names []string
		for evt := mt.GetStartedEvent(); evt != nil; evt = mt.GetStartedEvent() {
			names = append(names, evt.CommandName)
		}
		assert.Equal(mt, []string{"insert", "delete", "delete"}, names)
	})

	mt.Run("record inside transaction", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll, mt.Coll, true, zap.NewNop())
		var runs int
		repo.transact = func(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
			runs++
			return fn(ctx)
		}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		enrollmentID := primitive.NewObjectID()
		payment := &models.Payment{Item: enrollmentID.Hex(), Date: models.PaymentDate{Time: time.Now().UTC()}}
		res, err := repo.Record(context.Background(), payment, enrollmentID)
		require.NoError(mt, err)
		assert.Equal(mt, 1, runs)
		assert.Equal(mt, payment.ID, res.InsertResult.InsertedID)
		assert.Equal(mt, int64(1), res.DeleteResult.DeletedCount)
	})

	mt.Run("transaction failure leaves compensation to the rollback", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.Coll, mt.Coll, true, zap.NewNop())
		repo.transact = func(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
			return fn(ctx)
		}
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value", Name: "BadValue"}),
		)
		mt.ClearEvents()

		enrollmentID := primitive.NewObjectID()
		_, err := repo.Record(context.Background(), &models.Payment{Item: enrollmentID.Hex()}, enrollmentID)
		require.Error(mt, err)

		var names []string
		for evt := mt.GetStartedEvent(); evt != nil; evt = mt.GetStartedEvent() {
			names = append(names, evt.CommandName)
		}
		assert.Equal(mt, []string{"insert", "delete"}, names)
	})
}
