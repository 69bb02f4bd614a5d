package serviceRepo

import (
	"context"
	"fmt"

	"serviceboard/database"
	"serviceboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Create inserts a new service document. The store assigns the identifier.
func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) (*models.InsertResult, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	service.ID = primitive.NilObjectID
	result, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		service.ID = oid
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: database.InsertedHex(result.InsertedID)}, nil
}

// Update applies a $set of the editable service fields.
func (r *MongoServiceRepo) Update(ctx context.Context, id string, update models.ServiceUpdate) (*models.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, database.ErrNotFound
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// Delete removes a service document by its identifier.
func (r *MongoServiceRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return &models.DeleteResult{Acknowledged: true}, nil
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
