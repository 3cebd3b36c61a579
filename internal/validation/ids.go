package validation

import "go.mongodb.org/mongo-driver/bson/primitive"

// IsValidID reports whether raw is a well-formed store identifier
// (24 hex characters). Repositories call this before any store access.
func IsValidID(raw string) bool {
	_, err := primitive.ObjectIDFromHex(raw)
	return err == nil
}

// ToObjectID coerces a raw identifier string to the store's native form.
// Only defined for valid identifiers; callers must check IsValidID first.
func ToObjectID(raw string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(raw)
}
