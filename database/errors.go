package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches the requested identifier.
var ErrNotFound = errors.New("document not found")

// ParseID converts a path identifier into an ObjectID. A malformed identifier
// can never match a stored document, so callers treat the error as not found.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

// InsertedHex renders the identifier returned by InsertOne.
func InsertedHex(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
