package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses used by the board. Any non-empty status is accepted on update.
const (
	BookingStatusPending   = "pending"
	BookingStatusWorking   = "working"
	BookingStatusCompleted = "completed"
)

// Booking represents a user's booking of a service. Unknown payload fields are kept in Extra.
type Booking struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceID            string             `bson:"serviceId" json:"serviceId"` // Opaque reference, not validated against services
	ServiceName          string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	ServiceImage         string             `bson:"serviceImage,omitempty" json:"serviceImage,omitempty"`
	ServicePrice         interface{}        `bson:"servicePrice,omitempty" json:"servicePrice,omitempty"`
	ServiceProviderEmail string             `bson:"serviceProviderEmail" json:"serviceProviderEmail"`
	ServiceProviderName  string             `bson:"serviceProviderName,omitempty" json:"serviceProviderName,omitempty"`
	UserEmail            string             `bson:"userEmail" json:"userEmail"`
	UserName             string             `bson:"userName,omitempty" json:"userName,omitempty"`
	ServiceTakingDate    string             `bson:"serviceTakingDate" json:"serviceTakingDate"` // ISO-8601, sorted lexicographically
	SpecialInstruction   string             `bson:"specialInstruction,omitempty" json:"specialInstruction,omitempty"`
	Status               string             `bson:"serviceStatus" json:"serviceStatus"`
	Extra                bson.M             `bson:",inline" json:"-"`
}

type bookingFields Booking

func (b Booking) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(bookingFields(b), b.Extra)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var fields bookingFields
	extra, err := decodeWithExtra(data, &fields)
	if err != nil {
		return err
	}
	*b = Booking(fields)
	b.Extra = extra
	return nil
}
