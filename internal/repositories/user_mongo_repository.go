package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory/internal/models"
	"inventory/internal/validation"
)

// MongoUserRepository implements UserRepository against the users collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a user repository bound to db.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Called once at startup; it
// closes the check-then-insert race on registration.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating email index: %w", err)
	}
	return nil
}

// FindAll returns all users, sanitized.
func (r *MongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding users: %w", err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	for i := range users {
		users[i].Sanitize()
	}
	return users, nil
}

// FindByID returns the sanitized user with the given id, or nil.
func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "user"}
	}
	oid, _ := validation.ToObjectID(id)

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return user.Sanitize(), nil
}

// FindByEmail returns the user with the given email including the password
// hash, for credential verification. Lookup is case-folded.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &user, nil
}

// FindByGithubID returns the sanitized user linked to the given provider id.
func (r *MongoUserRepository) FindByGithubID(ctx context.Context, githubID string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"githubId": githubID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user by github id: %w", err)
	}
	return user.Sanitize(), nil
}

// Create inserts a new user and returns it sanitized.
func (r *MongoUserRepository) Create(ctx context.Context, payload map[string]any, passwordHash string) (*models.User, error) {
	doc := cleanPayload(payload, "password")

	email, _ := doc["email"].(string)
	email = strings.ToLower(email)
	doc["email"] = email

	existing, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateEmail
	}

	if passwordHash != "" {
		doc["password"] = passwordHash
	}
	if _, ok := doc["roles"]; !ok {
		doc["roles"] = []string{string(models.RoleUser)}
	}
	doc["createdAt"] = nowISO()

	result, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, models.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	doc["_id"] = result.InsertedID

	var user models.User
	if err := decodeInto(doc, &user); err != nil {
		return nil, fmt.Errorf("decoding created user: %w", err)
	}
	return user.Sanitize(), nil
}

// Update merges the payload into the stored document, stripping password,
// githubId, and roles, and returns the refreshed sanitized user.
func (r *MongoUserRepository) Update(ctx context.Context, id string, payload map[string]any) (*models.User, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "user"}
	}
	oid, _ := validation.ToObjectID(id)

	doc := cleanPayload(payload, "password", "githubId", "roles")

	if raw, ok := doc["email"].(string); ok {
		email := strings.ToLower(raw)
		doc["email"] = email
		existing, err := r.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != oid {
			return nil, models.ErrDuplicateEmail
		}
	}

	doc["updatedAt"] = nowISO()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if mongo.IsDuplicateKeyError(err) {
		return nil, models.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, &models.NotFoundError{Entity: "user"}
	}

	return r.FindByID(ctx, id)
}

// Delete removes the user with the given id.
func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	if !validation.IsValidID(id) {
		return &models.InvalidIDError{Entity: "user"}
	}
	oid, _ := validation.ToObjectID(id)

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if result.DeletedCount == 0 {
		return &models.NotFoundError{Entity: "user"}
	}
	return nil
}

// FindOrCreateFromProfile resolves an OAuth login against the users
// collection. Provider data is trusted; the generic validator does not run
// here and no password is ever set.
func (r *MongoUserRepository) FindOrCreateFromProfile(ctx context.Context, profile *models.OAuthProfile) (*models.User, error) {
	existing, err := r.FindByGithubID(ctx, profile.ProviderID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		update := bson.M{
			"name":      profile.Name(),
			"updatedAt": nowISO(),
		}
		if profile.AvatarURL != "" {
			update["avatar"] = profile.AvatarURL
		}
		if _, err := r.collection.UpdateOne(ctx, bson.M{"githubId": profile.ProviderID}, bson.M{"$set": update}); err != nil {
			return nil, fmt.Errorf("refreshing oauth user: %w", err)
		}
		return r.FindByGithubID(ctx, profile.ProviderID)
	}

	doc := bson.M{
		"githubId":  profile.ProviderID,
		"name":      profile.Name(),
		"email":     strings.ToLower(profile.Email()),
		"roles":     []string{string(models.RoleUser)},
		"createdAt": nowISO(),
	}
	if profile.AvatarURL != "" {
		doc["avatar"] = profile.AvatarURL
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, models.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("inserting oauth user: %w", err)
	}
	doc["_id"] = result.InsertedID

	var user models.User
	if err := decodeInto(doc, &user); err != nil {
		return nil, fmt.Errorf("decoding oauth user: %w", err)
	}
	return user.Sanitize(), nil
}
