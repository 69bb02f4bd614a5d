package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serviceboard/database"
	"serviceboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBookingRepo creates a BookingRepository on the "bookings" collection of db.
func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) BookingRepository {
	return &MongoBookingRepo{
		coll:    db.Collection(database.BookingsCollection),
		timeout: timeout,
	}
}

func (r *MongoBookingRepo) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	booking.ID = primitive.NilObjectID
	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: database.InsertedHex(result.InsertedID)}, nil
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, email string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "serviceTakingDate", Value: -1}})
	return r.find(ctx, bson.M{"userEmail": email}, opts)
}

func (r *MongoBookingRepo) ListByProvider(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"serviceProviderEmail": email})
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"serviceStatus": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update status of booking %s: %w", id, err)
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

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
