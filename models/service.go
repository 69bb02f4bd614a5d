// models/service.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service represents a service listed on the board by a provider.
// Fields the board does not interpret are kept in Extra and stored as sent.
type Service struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                 string             `bson:"serviceName" json:"serviceName"`
	Description          string             `bson:"serviceDescription" json:"serviceDescription"`
	Price                interface{}        `bson:"servicePrice,omitempty" json:"servicePrice,omitempty"`
	Image                string             `bson:"serviceImage" json:"serviceImage"`
	Location             string             `bson:"serviceLocation" json:"serviceLocation"`
	ServiceProviderEmail string             `bson:"serviceProviderEmail" json:"serviceProviderEmail"`
	ServiceProviderName  string             `bson:"serviceProviderName,omitempty" json:"serviceProviderName,omitempty"`
	ServiceProviderImage string             `bson:"serviceProviderImage,omitempty" json:"serviceProviderImage,omitempty"`
	Extra                bson.M             `bson:",inline" json:"-"`
}

type serviceFields Service

func (s Service) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(serviceFields(s), s.Extra)
}

func (s *Service) UnmarshalJSON(data []byte) error {
	var fields serviceFields
	extra, err := decodeWithExtra(data, &fields)
	if err != nil {
		return err
	}
	*s = Service(fields)
	s.Extra = extra
	return nil
}

// ServiceUpdate is the full-field replacement applied by PUT /service/:id.
// Omitted fields are written as null. Provider fields are never touched by an update.
type ServiceUpdate struct {
	Name        *string     `bson:"serviceName" json:"serviceName"`
	Description *string     `bson:"serviceDescription" json:"serviceDescription"`
	Price       interface{} `bson:"servicePrice" json:"servicePrice"`
	Image       *string     `bson:"serviceImage" json:"serviceImage"`
	Location    string      `bson:"serviceLocation" json:"serviceLocation"`
}
