// Package validation implements the payload validation layer: a declarative
// rule table per entity, evaluated uniformly against raw JSON payloads, plus
// the identifier validator/coercer used by every repository.
//
// Validators are pure: no I/O, no store lookups. Uniqueness and existence
// checks belong to the repositories.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"inventory/internal/models"
)

// Predicate checks a single present value. It must not be called for absent
// fields; the engine handles presence separately.
type Predicate func(v any) bool

// Rule is one (field, predicate, message) triple. Field may be a dot path
// into a nested object ("address.street"); nested rules are skipped entirely
// when the parent is absent, so a missing address yields one error, not five.
type Rule struct {
	Field    string
	Required bool
	Check    Predicate
	Message  string
}

var fieldValidator = validator.New()

// Apply evaluates rules against payload and returns every field error found.
// An empty slice means the payload is acceptable.
//
// Presence: a field counts as present when it exists and is neither nil nor
// the empty string. Zero and false are present; this matters for numeric and
// boolean fields such as stock and isAvailable.
func Apply(rules []Rule, payload map[string]any) []models.FieldError {
	var errs []models.FieldError
	for _, r := range rules {
		v, found, parentFound := lookup(payload, r.Field)
		if !parentFound {
			continue
		}
		if !found || !present(v) {
			if r.Required {
				errs = append(errs, models.FieldError{
					Field:   r.Field,
					Message: r.Field + " is required",
				})
			}
			continue
		}
		if r.Check != nil && !r.Check(v) {
			errs = append(errs, models.FieldError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}

func present(v any) bool {
	return v != nil && v != ""
}

// lookup resolves a dot path. parentFound is false only when an intermediate
// segment is missing or not an object.
func lookup(payload map[string]any, path string) (v any, found, parentFound bool) {
	segments := strings.Split(path, ".")
	current := payload
	for i, seg := range segments {
		value, ok := current[seg]
		if i == len(segments)-1 {
			return value, ok, true
		}
		child, isMap := value.(map[string]any)
		if !ok || !isMap {
			return nil, false, false
		}
		current = child
	}
	return nil, false, false
}

// --- predicates ---

// StringMinLen accepts strings of at least n characters.
func StringMinLen(n int) Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) >= n
	}
}

// IsString accepts any non-empty string. Empty strings never reach a
// predicate (they count as absent), so a bare type check suffices.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNumber accepts JSON numbers (float64 after decoding) and Go ints.
func IsNumber(v any) bool {
	_, ok := asNumber(v)
	return ok
}

// NonNegativeNumber accepts numbers >= 0.
func NonNegativeNumber(v any) bool {
	n, ok := asNumber(v)
	return ok && n >= 0
}

// NonNegativeInt accepts whole numbers >= 0.
func NonNegativeInt(v any) bool {
	n, ok := asNumber(v)
	return ok && n >= 0 && n == float64(int64(n))
}

// IsBool accepts booleans only.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsObject accepts decoded JSON objects.
func IsObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// IsArray accepts decoded JSON arrays and string slices.
func IsArray(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	}
	return false
}

// IsEmail checks email syntax.
func IsEmail(v any) bool {
	s, ok := v.(string)
	return ok && fieldValidator.Var(s, "email") == nil
}

// IsURL checks URL syntax.
func IsURL(v any) bool {
	s, ok := v.(string)
	return ok && fieldValidator.Var(s, "url") == nil
}

// IsObjectIDHex accepts syntactically valid store identifiers.
func IsObjectIDHex(v any) bool {
	s, ok := v.(string)
	return ok && IsValidID(s)
}

// OneOf accepts any of the given string values.
func OneOf(values ...string) Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, want := range values {
			if s == want {
				return true
			}
		}
		return false
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
