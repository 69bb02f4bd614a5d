package serviceRepo

import (
	"context"
	"testing"
	"time"

	"serviceboard/database"
	"serviceboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "service-db.services"

// sentCommand pops the first command the repository sent and checks its name.
func sentCommand(mt *mtest.T, name string) bson.Raw {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt, "no command was sent")
	require.Equal(mt, name, evt.CommandName)
	return evt.Command
}

func strPtr(s string) *string { return &s }

func TestMongoServiceRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list by provider decodes documents", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "serviceName", Value: "Plumbing"},
			{Key: "servicePrice", Value: 40.5},
			{Key: "serviceLocation", Value: "Dhaka"},
			{Key: "serviceProviderEmail", Value: "pro@example.com"},
		}))

		services, err := repo.ListByProvider(ctx, "pro@example.com")
		require.NoError(mt, err)
		require.Len(mt, services, 1)
		assert.Equal(mt, id, services[0].ID)
		assert.Equal(mt, "Plumbing", services[0].Name)
		assert.Equal(mt, 40.5, services[0].Price)

		filter := sentCommand(mt, "find").Lookup("filter").Document()
		assert.Equal(mt, "pro@example.com", filter.Lookup("serviceProviderEmail").StringValue())
	})

	mt.Run("list keeps untyped fields", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "serviceName", Value: "Gardening"},
			{Key: "servicePrice", Value: "25"},
			{Key: "serviceArea", Value: "North"},
		}))

		services, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, services, 1)
		assert.Equal(mt, "25", services[0].Price)
		assert.Equal(mt, "North", services[0].Extra["serviceArea"])
	})

	mt.Run("list returns empty slice", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		services, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, services)
		assert.Empty(mt, services)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, database.ErrNotFound)
	})

	mt.Run("malformed id is not found", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)

		_, err := repo.GetByID(ctx, "not-an-id")
		require.ErrorIs(mt, err, database.ErrNotFound)

		res, err := repo.Delete(ctx, "not-an-id")
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.DeletedCount)
	})

	mt.Run("create assigns identifier", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		svc := &models.Service{Name: "Cleaning", Location: "Khulna"}
		res, err := repo.Create(ctx, svc)
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Equal(mt, svc.ID.Hex(), res.InsertedID)
		assert.False(mt, svc.ID.IsZero())
	})

	mt.Run("update with no match is not found", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), models.ServiceUpdate{Location: "Sylhet"})
		require.ErrorIs(mt, err, database.ErrNotFound)
	})

	mt.Run("update reports counts", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		res, err := repo.Update(ctx, primitive.NewObjectID().Hex(), models.ServiceUpdate{
			Name:     strPtr("Plumbing"),
			Location: "Sylhet",
		})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)

		set := sentCommand(mt, "update").Lookup("updates", "0", "u", "$set").Document()
		assert.Equal(mt, "Plumbing", set.Lookup("serviceName").StringValue())
		assert.Equal(mt, "Sylhet", set.Lookup("serviceLocation").StringValue())
		for _, omitted := range []string{"serviceDescription", "servicePrice", "serviceImage"} {
			assert.Equal(mt, bson.TypeNull, set.Lookup(omitted).Type, omitted)
		}
		_, err = set.LookupErr("serviceProviderEmail")
		assert.Error(mt, err, "provider fields are never updated")
	})

	mt.Run("delete twice", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		id := primitive.NewObjectID().Hex()
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}},
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}},
		)

		first, err := repo.Delete(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), first.DeletedCount)

		second, err := repo.Delete(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), second.DeletedCount)
	})

	mt.Run("store failure is wrapped", func(mt *mtest.T) {
		repo := NewMongoServiceRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))

		_, err := repo.List(ctx)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to retrieve services")
	})
}
