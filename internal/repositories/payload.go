package repositories

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"inventory/internal/validation"
)

// Fields the server owns. Any client-supplied value for these is dropped
// before a document is written.
var serverAssignedFields = []string{"_id", "createdAt", "updatedAt"}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// cleanPayload copies payload into a bson document, dropping the
// server-assigned fields plus any extra keys given.
func cleanPayload(payload map[string]any, extra ...string) bson.M {
	strip := make(map[string]struct{}, len(serverAssignedFields)+len(extra))
	for _, k := range serverAssignedFields {
		strip[k] = struct{}{}
	}
	for _, k := range extra {
		strip[k] = struct{}{}
	}

	doc := bson.M{}
	for k, v := range payload {
		if _, skip := strip[k]; skip {
			continue
		}
		doc[k] = v
	}
	return doc
}

// coerceObjectIDField converts a foreign-key-like string field to the native
// identifier type when it is syntactically valid, leaving it untouched
// otherwise. Invalid values are the validator's concern, which runs first.
func coerceObjectIDField(doc bson.M, key string) {
	raw, ok := doc[key].(string)
	if !ok || !validation.IsValidID(raw) {
		return
	}
	oid, err := validation.ToObjectID(raw)
	if err == nil {
		doc[key] = oid
	}
}

// decodeInto round-trips a raw document through bson into a typed entity.
func decodeInto(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
