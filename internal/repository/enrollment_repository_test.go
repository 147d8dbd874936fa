package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/noah-isme/artspires-api/internal/models"
)

func TestEnrollmentRepository(t *testing.T) {
	mt := newMockT(t)

	mt.Run("list filtered by email", func(mt *mtest.T) {
		repo := NewEnrollmentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "s@x.com"}, {Key: "name", Value: "Watercolor"}},
		))
		mt.ClearEvents()

		items, err := repo.List(context.Background(), models.EmailFilter{Email: "s@x.com"})
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "s@x.com", items[0].Email)
		assert.Equal(mt, "s@x.com", mt.GetStartedEvent().Command.Lookup("filter", "email").StringValue())
	})

	mt.Run("list without filter", func(mt *mtest.T) {
		repo := NewEnrollmentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		mt.ClearEvents()

		_, err := repo.List(context.Background(), models.EmailFilter{})
		require.NoError(mt, err)
		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		elems, err := filter.Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})

	mt.Run("find by id applies projection", func(mt *mtest.T) {
		repo := NewEnrollmentRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "name", Value: "Oil"}, {Key: "price", Value: 25.5}, {Key: "email", Value: "s@x.com"}},
		))
		mt.ClearEvents()

		item, err := repo.FindByID(context.Background(), id, models.EnrollmentSummaryFields)
		require.NoError(mt, err)
		assert.Equal(mt, 25.5, item.Price)
		proj := mt.GetStartedEvent().Command.Lookup("projection").Document()
		for _, field := range models.EnrollmentSummaryFields {
			_, err := proj.LookupErr(field)
			assert.NoError(mt, err, field)
		}
	})

	mt.Run("delete existing", func(mt *mtest.T) {
		repo := NewEnrollmentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewEnrollmentRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := repo.Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.DeletedCount)
	})
}
