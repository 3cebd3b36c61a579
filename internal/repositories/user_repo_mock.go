package repositories

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory/internal/models"
	"inventory/internal/validation"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// Email uniqueness is enforced the way the unique index does for the Mongo
// implementation.
type MockUserRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]bson.M
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{docs: make(map[primitive.ObjectID]bson.M)}
}

func (r *MockUserRepository) emailTaken(email string, exclude primitive.ObjectID) bool {
	for id, doc := range r.docs {
		if id == exclude {
			continue
		}
		if doc["email"] == email {
			return true
		}
	}
	return false
}

func (r *MockUserRepository) decodeUser(doc bson.M, sanitize bool) (*models.User, error) {
	var u models.User
	if err := decodeInto(doc, &u); err != nil {
		return nil, err
	}
	if sanitize {
		u.Sanitize()
	}
	return &u, nil
}

// FindAll returns all users, sanitized.
func (r *MockUserRepository) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.docs))
	for _, doc := range r.docs {
		u, err := r.decodeUser(doc, true)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// FindByID returns the sanitized user with the given id, or nil.
func (r *MockUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "user"}
	}
	oid, _ := validation.ToObjectID(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[oid]
	if !ok {
		return nil, nil
	}
	return r.decodeUser(doc, true)
}

// FindByEmail returns the user with the given email including the hash.
func (r *MockUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.docs {
		if doc["email"] == email {
			return r.decodeUser(doc, false)
		}
	}
	return nil, nil
}

// FindByGithubID returns the sanitized user linked to the given provider id.
func (r *MockUserRepository) FindByGithubID(_ context.Context, githubID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.docs {
		if doc["githubId"] == githubID {
			return r.decodeUser(doc, true)
		}
	}
	return nil, nil
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, payload map[string]any, passwordHash string) (*models.User, error) {
	doc := cleanPayload(payload, "password")

	email, _ := doc["email"].(string)
	email = strings.ToLower(email)
	doc["email"] = email

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(email, primitive.NilObjectID) {
		return nil, models.ErrDuplicateEmail
	}

	if passwordHash != "" {
		doc["password"] = passwordHash
	}
	if _, ok := doc["roles"]; !ok {
		doc["roles"] = []string{string(models.RoleUser)}
	}
	doc["createdAt"] = nowISO()
	doc["_id"] = primitive.NewObjectID()

	r.docs[doc["_id"].(primitive.ObjectID)] = doc
	return r.decodeUser(doc, true)
}

// Update merges the payload into the stored document.
func (r *MockUserRepository) Update(_ context.Context, id string, payload map[string]any) (*models.User, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "user"}
	}
	oid, _ := validation.ToObjectID(id)

	doc := cleanPayload(payload, "password", "githubId", "roles")

	r.mu.Lock()
	defer r.mu.Unlock()

	if raw, ok := doc["email"].(string); ok {
		email := strings.ToLower(raw)
		doc["email"] = email
		if r.emailTaken(email, oid) {
			return nil, models.ErrDuplicateEmail
		}
	}
	doc["updatedAt"] = nowISO()

	existing, ok := r.docs[oid]
	if !ok {
		return nil, &models.NotFoundError{Entity: "user"}
	}
	merged := bson.M{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range doc {
		merged[k] = v
	}
	r.docs[oid] = merged

	return r.decodeUser(merged, true)
}

// Delete removes a user by its ID.
func (r *MockUserRepository) Delete(_ context.Context, id string) error {
	if !validation.IsValidID(id) {
		return &models.InvalidIDError{Entity: "user"}
	}
	oid, _ := validation.ToObjectID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[oid]; !ok {
		return &models.NotFoundError{Entity: "user"}
	}
	delete(r.docs, oid)
	return nil
}

// FindOrCreateFromProfile resolves an OAuth login.
func (r *MockUserRepository) FindOrCreateFromProfile(_ context.Context, profile *models.OAuthProfile) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, doc := range r.docs {
		if doc["githubId"] == profile.ProviderID {
			doc["name"] = profile.Name()
			if profile.AvatarURL != "" {
				doc["avatar"] = profile.AvatarURL
			}
			doc["updatedAt"] = nowISO()
			return r.decodeUser(doc, true)
		}
	}

	email := strings.ToLower(profile.Email())
	if r.emailTaken(email, primitive.NilObjectID) {
		return nil, models.ErrDuplicateEmail
	}

	doc := bson.M{
		"_id":       primitive.NewObjectID(),
		"githubId":  profile.ProviderID,
		"name":      profile.Name(),
		"email":     email,
		"roles":     []string{string(models.RoleUser)},
		"createdAt": nowISO(),
	}
	if profile.AvatarURL != "" {
		doc["avatar"] = profile.AvatarURL
	}
	r.docs[doc["_id"].(primitive.ObjectID)] = doc
	return r.decodeUser(doc, true)
}
