package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serviceboard/database"
	"serviceboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoServiceRepo creates a ServiceRepository on the "services" collection of db.
func NewMongoServiceRepo(db *mongo.Database, timeout time.Duration) ServiceRepository {
	return &MongoServiceRepo{
		coll:    db.Collection(database.ServicesCollection),
		timeout: timeout,
	}
}

func (r *MongoServiceRepo) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoServiceRepo) ListByProvider(ctx context.Context, email string) ([]models.Service, error) {
	return r.find(ctx, bson.M{"serviceProviderEmail": email})
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

func (r *MongoServiceRepo) find(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return services, nil
}
