package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize converts a stored record into a JSON-safe map: the store's _id
// becomes a hex string under "id", date-typed fields render as YYYY-MM-DD and
// any other timestamp (updated_at) as RFC 3339. The input record is never
// mutated and serializing an already-serialized record is a no-op.
func (d Definition) Serialize(record map[string]interface{}) map[string]interface{} {
	if record == nil {
		return nil
	}

	out := make(map[string]interface{}, len(record))
	for key, value := range record {
		out[key] = value
	}

	if rawID, ok := out["_id"]; ok {
		delete(out, "_id")
		if oid, isOID := rawID.(primitive.ObjectID); isOID {
			out["id"] = oid.Hex()
		} else {
			out["id"] = rawID
		}
	}

	for key, value := range out {
		t, ok := asTime(value)
		if !ok {
			continue
		}
		if f, known := d.field(key); known && f.Type == TypeDate {
			out[key] = t.UTC().Format(DateLayout)
		} else {
			out[key] = t.UTC().Format(time.RFC3339)
		}
	}

	return out
}

// SerializeAll serializes a result set, returning an empty (non-nil) slice
// for empty input so lists encode as [] rather than null.
func (d Definition) SerializeAll(records []bson.M) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		out = append(out, d.Serialize(record))
	}
	return out
}

// asTime recognises the timestamp shapes the driver can hand back.
func asTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case primitive.DateTime:
		return v.Time(), true
	default:
		return time.Time{}, false
	}
}
