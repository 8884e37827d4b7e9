package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// byID is the filter for a single document.
func byID(id bson.ObjectID) bson.M {
	return bson.M{"_id": id}
}

// setUnset turns projected fields into an update document: nil values are
// removed with $unset, everything else goes to $set. An empty input yields an
// empty document.
func setUnset(fields map[string]any) bson.M {
	set := bson.M{}
	unset := bson.M{}
	for k, v := range fields {
		if v == nil {
			unset[k] = ""
			continue
		}
		set[k] = v
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// translateNotFound maps the driver ErrNoDocuments to the given domain error.
func translateNotFound(err, notFound error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return err
}
