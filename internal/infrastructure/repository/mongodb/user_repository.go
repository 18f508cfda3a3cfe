package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mittr/linkup/internal/domain/errs"
	userdomain "github.com/mittr/linkup/internal/domain/user"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// MongoUserRepository implements user.Repository on a MongoDB collection.
type MongoUserRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// UserRepoOption configures MongoUserRepository.
type UserRepoOption func(*MongoUserRepository)

// WithUserRepoLogger sets the logger for the user repository.
func WithUserRepoLogger(logger *slog.Logger) UserRepoOption {
	return func(r *MongoUserRepository) {
		r.logger = logger
	}
}

// NewMongoUserRepository creates a new MongoDB user repository.
func NewMongoUserRepository(collection *mongo.Collection, opts ...UserRepoOption) *MongoUserRepository {
	r := &MongoUserRepository{
		collection: collection,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FindByID finds a user by id.
func (r *MongoUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error) {
	if id.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"user_id": id.String()}
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.ErrorContext(ctx, "failed to find user by ID",
				slog.String("user_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, HandleMongoError(err, "user")
	}

	return documentToUser(&doc)
}

// FindByUsername finds a user by username.
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	if username == "" {
		return nil, errs.ErrInvalidInput
	}

	filter := bson.M{"username": username}
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, HandleMongoError(err, "user")
	}

	return documentToUser(&doc)
}

// ExistsByUsername checks whether a user with the given username exists.
func (r *MongoUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, errs.ErrInvalidInput
	}

	filter := bson.M{"username": username}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, HandleMongoError(err, "user")
	}

	return count > 0, nil
}

// ExistsByEmail checks whether a user with the given email exists.
func (r *MongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, errs.ErrInvalidInput
	}

	filter := bson.M{"email": email}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, HandleMongoError(err, "user")
	}

	return count > 0, nil
}

// Save persists a user (insert or update).
func (r *MongoUserRepository) Save(ctx context.Context, u *userdomain.User) error {
	if u == nil || u.ID().IsZero() {
		return errs.ErrInvalidInput
	}

	doc := userToDocument(u)
	filter := bson.M{"user_id": u.ID().String()}
	update := bson.M{"$set": doc}

	_, err := r.collection.UpdateOne(ctx, filter, update, UpsertOptions())
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to save user",
			slog.String("user_id", u.ID().String()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "user")
}

// ListExcept returns all users except the given one, ordered by username.
func (r *MongoUserRepository) ListExcept(ctx context.Context, exclude uuid.UUID) ([]*userdomain.User, error) {
	filter := bson.M{}
	if !exclude.IsZero() {
		filter["user_id"] = bson.M{"$ne": exclude.String()}
	}

	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, HandleMongoError(err, "users")
	}
	defer cursor.Close(ctx)

	var users []*userdomain.User
	for cursor.Next(ctx) {
		var doc userDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			return nil, HandleMongoError(decodeErr, "users")
		}
		u, convErr := documentToUser(&doc)
		if convErr != nil {
			return nil, convErr
		}
		users = append(users, u)
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "users")
	}

	return users, nil
}

// userDocument is the MongoDB document shape for a user.
type userDocument struct {
	UserID       string    `bson:"user_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func userToDocument(u *userdomain.User) userDocument {
	return userDocument{
		UserID:       u.ID().String(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func documentToUser(doc *userDocument) (*userdomain.User, error) {
	if doc == nil {
		return nil, errs.ErrInvalidInput
	}

	id, err := uuid.ParseUUID(doc.UserID)
	if err != nil {
		return nil, errs.ErrInvalidInput
	}

	return userdomain.Reconstruct(
		id,
		doc.Username,
		doc.Email,
		doc.PasswordHash,
		doc.CreatedAt,
		doc.UpdatedAt,
	), nil
}
