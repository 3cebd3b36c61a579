package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is a closed enumeration of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles is the set of roles attached to a user.
type Roles []Role

// Intersects reports whether the set shares at least one role with allowed.
func (r Roles) Intersects(allowed ...Role) bool {
	for _, have := range r {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Strings returns the roles as plain strings, for token claims.
func (r Roles) Strings() []string {
	out := make([]string, len(r))
	for i, role := range r {
		out[i] = string(role)
	}
	return out
}

// RolesFromStrings converts raw role strings back into a Roles set.
func RolesFromStrings(raw []string) Roles {
	out := make(Roles, len(raw))
	for i, s := range raw {
		out[i] = Role(s)
	}
	return out
}

// User represents an account document. Password holds the bcrypt hash and is
// never serialized to JSON; repository reads additionally blank it so the
// key is absent from every response.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password,omitempty"`
	GithubID  string             `json:"githubId,omitempty" bson:"githubId,omitempty"`
	Avatar    string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Roles     Roles              `json:"roles" bson:"roles"`
	CreatedAt string             `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt string             `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Sanitize strips the password hash before the user leaves the repository.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}

// OAuthProfile is the identity delivered by the external OAuth provider
// after a successful handshake. It is trusted as-is.
type OAuthProfile struct {
	ProviderID  string
	Username    string
	DisplayName string
	Emails      []string
	AvatarURL   string
}

// Name returns the display name, falling back to the username.
func (p *OAuthProfile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// Email returns the profile's first email, or a deterministic placeholder
// derived from the username when the provider shared none.
func (p *OAuthProfile) Email() string {
	if len(p.Emails) > 0 {
		return p.Emails[0]
	}
	return p.Username + "@github.com"
}
