package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestService_JSONKeepsUnknownFields(t *testing.T) {
	body := `{"_id":"65f1a2b3c4d5e6f708091a2b","serviceName":"Gardening","servicePrice":"25","serviceLocation":"Rajshahi","serviceArea":"North"}`

	var s Service
	require.NoError(t, json.Unmarshal([]byte(body), &s))
	assert.Equal(t, "Gardening", s.Name)
	assert.Equal(t, "25", s.Price)
	assert.Equal(t, bson.M{"serviceArea": "North"}, s.Extra)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	var rendered map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &rendered))
	assert.Equal(t, "North", rendered["serviceArea"])
	assert.Equal(t, "25", rendered["servicePrice"])
	assert.Equal(t, "65f1a2b3c4d5e6f708091a2b", rendered["_id"])
}

func TestService_BSONInlinesExtra(t *testing.T) {
	s := Service{Name: "Gardening", Price: 12.5, Extra: bson.M{"serviceArea": "North"}}

	raw, err := bson.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "North", bson.Raw(raw).Lookup("serviceArea").StringValue())

	var back Service
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, 12.5, back.Price)
	assert.Equal(t, "North", back.Extra["serviceArea"])
}

func TestBooking_RejectsNonObjectBody(t *testing.T) {
	var b Booking
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &b))
}
