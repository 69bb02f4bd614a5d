package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates indexes for the fields the board filters and sorts on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	serviceIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serviceProviderEmail", Value: 1}}},
	}
	if _, err := s.Database.Collection(ServicesCollection).Indexes().CreateMany(ctx, serviceIdx); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	bookingIdx := []mongo.IndexModel{
		// Backs the per-user listing, which sorts newest first.
		{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "serviceTakingDate", Value: -1}}},
		{Keys: bson.D{{Key: "serviceProviderEmail", Value: 1}}},
	}
	if _, err := s.Database.Collection(BookingsCollection).Indexes().CreateMany(ctx, bookingIdx); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
