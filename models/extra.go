package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// jsonKeys returns the JSON names of the exported fields of struct type t.
func jsonKeys(t reflect.Type) map[string]struct{} {
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" {
			continue
		}
		keys[name] = struct{}{}
	}
	return keys
}

// decodeWithExtra fills typed (a struct pointer) from data and returns every
// key that typed does not declare.
func decodeWithExtra(data []byte, typed interface{}) (bson.M, error) {
	if err := json.Unmarshal(data, typed); err != nil {
		return nil, err
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for key := range jsonKeys(reflect.TypeOf(typed).Elem()) {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return bson.M(all), nil
}

// encodeWithExtra renders typed and appends the extra keys it does not already carry.
func encodeWithExtra(typed interface{}, extra bson.M) ([]byte, error) {
	raw, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return raw, err
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := merged[key]; ok {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = encoded
	}
	return json.Marshal(merged)
}
