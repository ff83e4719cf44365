package entity

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/pkg/errors"
)

// Coordinate is a venue latitude or longitude that remembers whether the
// source stored it as an integer. Integer-typed coordinates are too
// ambiguous to anchor a synthesized place, so the fallback rejects them.
type Coordinate struct {
	Value    float64
	Integral bool
}

// Float returns a Coordinate carrying a double-typed value.
func Float(v float64) *Coordinate {
	return &Coordinate{Value: v}
}

// Integer returns a Coordinate carrying an integer-typed value.
func Integer(v int64) *Coordinate {
	return &Coordinate{Value: float64(v), Integral: true}
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (c *Coordinate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDouble:
		c.Value = raw.Double()
		c.Integral = false
	case bson.TypeInt32:
		c.Value = float64(raw.Int32())
		c.Integral = true
	case bson.TypeInt64:
		c.Value = float64(raw.Int64())
		c.Integral = true
	default:
		return errors.Errorf("cannot decode %s as a coordinate", t)
	}

	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler, round-tripping the
// numeric type the value was read with.
func (c Coordinate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.Integral {
		return bson.MarshalValue(int64(c.Value))
	}

	return bson.MarshalValue(c.Value)
}
