package validation

import "inventory/internal/models"

// Registration payloads require name, email, and password. OAuth-sourced
// payloads (carrying a githubId) are trusted from the provider and only get
// the syntactic checks. A client-supplied _id never waives the password
// requirement.
var userRegistrationRules = []Rule{
	{Field: "name", Required: true, Check: StringMinLen(2), Message: "name must be a string with at least 2 characters"},
	{Field: "email", Required: true, Check: IsEmail, Message: "email must be a valid email address"},
	{Field: "password", Required: true, Check: StringMinLen(8), Message: "password must be at least 8 characters"},
	{Field: "avatar", Check: IsURL, Message: "avatar must be a valid URL"},
}

var userRules = []Rule{
	{Field: "name", Check: StringMinLen(2), Message: "name must be a string with at least 2 characters"},
	{Field: "email", Check: IsEmail, Message: "email must be a valid email address"},
	{Field: "password", Check: StringMinLen(8), Message: "password must be at least 8 characters"},
	{Field: "avatar", Check: IsURL, Message: "avatar must be a valid URL"},
}

// ValidateUser checks a raw user payload. Payloads without a githubId are
// treated as direct registrations and get the required-field rules.
func ValidateUser(payload map[string]any) []models.FieldError {
	if _, oauth := payload["githubId"]; oauth {
		return Apply(userRules, payload)
	}
	return Apply(userRegistrationRules, payload)
}

// ValidateUserUpdate checks a partial user payload: only syntactic rules,
// no required fields.
func ValidateUserUpdate(payload map[string]any) []models.FieldError {
	return Apply(userRules, payload)
}
