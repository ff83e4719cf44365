package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// flattenSet converts nested documents into dotted-key assignments so a
// $set merges into existing subdocuments instead of replacing them.
// Nil leaves are dropped: absent values must not erase stored ones.
// Arrays are kept as values, not recursed into.
func flattenSet(doc bson.D) bson.D {
	out := bson.D{}
	flattenInto("", doc, &out)

	return out
}

func flattenInto(prefix string, doc bson.D, out *bson.D) {
	for _, elem := range doc {
		key := elem.Key
		if prefix != "" {
			key = prefix + "." + elem.Key
		}
		switch value := elem.Value.(type) {
		case bson.D:
			flattenInto(key, value, out)
		case nil:
		default:
			*out = append(*out, bson.E{Key: key, Value: value})
		}
	}
}

// marshalDoc round-trips a struct through BSON into a bson.D so it can
// be flattened. omitempty tags have already dropped absent fields.
func marshalDoc(v any) (bson.D, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document failed")
	}
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal document failed")
	}

	return doc, nil
}

// saveNoReplace upserts partial changes onto the document with the given
// id: set fields are merged via dotted keys, addToSet values are added
// without duplication. Concurrent writers converging on the same id are
// safe by last-write-wins semantics.
func saveNoReplace(ctx context.Context, coll *mongo.Collection, id string, set bson.D, addToSet bson.D) error {
	update := bson.D{}
	if len(set) != 0 {
		update = append(update, bson.E{Key: "$set", Value: flattenSet(set)})
	}
	if len(addToSet) != 0 {
		update = append(update, bson.E{Key: "$addToSet", Value: addToSet})
	}
	if len(update) == 0 {
		return nil
	}

	_, err := coll.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))

	return errors.Wrap(err, "update document failed")
}
