package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// MongoFriendRequestRepository implements friendship.RequestRepository.
// Each pending request is one document keyed by the (from_id, to_id) pair;
// a unique index on that pair rejects duplicates at the store level.
type MongoFriendRequestRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoFriendRequestRepository creates the repository.
func NewMongoFriendRequestRepository(collection *mongo.Collection, logger *slog.Logger) *MongoFriendRequestRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoFriendRequestRepository{
		collection: collection,
		logger:     logger,
	}
}

// Insert stores a pending request.
func (r *MongoFriendRequestRepository) Insert(ctx context.Context, req friendship.FriendRequest) error {
	if req.From.IsZero() || req.To.IsZero() {
		return errs.ErrInvalidInput
	}

	doc := requestDocument{
		FromID: req.From.String(),
		ToID:   req.To.String(),
		SentAt: req.SentAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		r.logger.ErrorContext(ctx, "failed to insert friend request",
			slog.String("from_id", req.From.String()),
			slog.String("to_id", req.To.String()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "friend request")
}

// Delete removes the (from, to) request. Absent requests are not an error.
func (r *MongoFriendRequestRepository) Delete(ctx context.Context, from, to uuid.UUID) error {
	filter := bson.M{"from_id": from.String(), "to_id": to.String()}
	_, err := r.collection.DeleteOne(ctx, filter)
	return HandleMongoError(err, "friend request")
}

// Exists reports whether a (from, to) request is pending.
func (r *MongoFriendRequestRepository) Exists(ctx context.Context, from, to uuid.UUID) (bool, error) {
	filter := bson.M{"from_id": from.String(), "to_id": to.String()}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, HandleMongoError(err, "friend request")
	}
	return count > 0, nil
}

// ListByReceiver returns requests addressed to the user, oldest first.
func (r *MongoFriendRequestRepository) ListByReceiver(
	ctx context.Context,
	to uuid.UUID,
) ([]friendship.FriendRequest, error) {
	return r.list(ctx, bson.M{"to_id": to.String()})
}

// ListBySender returns requests issued by the user, oldest first.
func (r *MongoFriendRequestRepository) ListBySender(
	ctx context.Context,
	from uuid.UUID,
) ([]friendship.FriendRequest, error) {
	return r.list(ctx, bson.M{"from_id": from.String()})
}

func (r *MongoFriendRequestRepository) list(
	ctx context.Context,
	filter bson.M,
) ([]friendship.FriendRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, HandleMongoError(err, "friend requests")
	}
	defer cursor.Close(ctx)

	var requests []friendship.FriendRequest
	for cursor.Next(ctx) {
		var doc requestDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			return nil, HandleMongoError(decodeErr, "friend requests")
		}
		req, convErr := documentToRequest(&doc)
		if convErr != nil {
			return nil, convErr
		}
		requests = append(requests, req)
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "friend requests")
	}

	return requests, nil
}

// requestDocument is the MongoDB document shape for a pending request edge.
type requestDocument struct {
	FromID string    `bson:"from_id"`
	ToID   string    `bson:"to_id"`
	SentAt time.Time `bson:"sent_at"`
}

func documentToRequest(doc *requestDocument) (friendship.FriendRequest, error) {
	from, err := uuid.ParseUUID(doc.FromID)
	if err != nil {
		return friendship.FriendRequest{}, errs.ErrInvalidInput
	}
	to, err := uuid.ParseUUID(doc.ToID)
	if err != nil {
		return friendship.FriendRequest{}, errs.ErrInvalidInput
	}
	return friendship.FriendRequest{From: from, To: to, SentAt: doc.SentAt}, nil
}

// MongoFriendshipRepository implements friendship.Repository. Each edge is
// one document with the pair stored in canonical (sorted) order and a unique
// index on it, so a pair can never be friends twice.
type MongoFriendshipRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoFriendshipRepository creates the repository.
func NewMongoFriendshipRepository(collection *mongo.Collection, logger *slog.Logger) *MongoFriendshipRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoFriendshipRepository{
		collection: collection,
		logger:     logger,
	}
}

// Upsert stores the friendship edge; storing an existing edge is a no-op.
func (r *MongoFriendshipRepository) Upsert(ctx context.Context, f friendship.Friendship) error {
	if f.UserA.IsZero() || f.UserB.IsZero() {
		return errs.ErrInvalidInput
	}

	filter := bson.M{"user_a": f.UserA.String(), "user_b": f.UserB.String()}
	update := bson.M{
		"$setOnInsert": friendshipDocument{
			UserA:     f.UserA.String(),
			UserB:     f.UserB.String(),
			CreatedAt: f.CreatedAt,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, UpsertOptions())
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to upsert friendship",
			slog.String("user_a", f.UserA.String()),
			slog.String("user_b", f.UserB.String()),
			slog.String("error", err.Error()),
		)
	}
	return HandleMongoError(err, "friendship")
}

// Delete removes the edge for the pair. Absent edges are not an error.
func (r *MongoFriendshipRepository) Delete(ctx context.Context, a, b uuid.UUID) error {
	first, second := friendship.SortPair(a, b)
	filter := bson.M{"user_a": first.String(), "user_b": second.String()}
	_, err := r.collection.DeleteOne(ctx, filter)
	return HandleMongoError(err, "friendship")
}

// Exists reports whether the pair is friends.
func (r *MongoFriendshipRepository) Exists(ctx context.Context, a, b uuid.UUID) (bool, error) {
	first, second := friendship.SortPair(a, b)
	filter := bson.M{"user_a": first.String(), "user_b": second.String()}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, HandleMongoError(err, "friendship")
	}
	return count > 0, nil
}

// ListByUser returns all friendship edges containing the user, oldest first.
func (r *MongoFriendshipRepository) ListByUser(
	ctx context.Context,
	id uuid.UUID,
) ([]friendship.Friendship, error) {
	filter := bson.M{"$or": []bson.M{
		{"user_a": id.String()},
		{"user_b": id.String()},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, HandleMongoError(err, "friendships")
	}
	defer cursor.Close(ctx)

	var edges []friendship.Friendship
	for cursor.Next(ctx) {
		var doc friendshipDocument
		if decodeErr := cursor.Decode(&doc); decodeErr != nil {
			return nil, HandleMongoError(decodeErr, "friendships")
		}
		edge, convErr := documentToFriendship(&doc)
		if convErr != nil {
			return nil, convErr
		}
		edges = append(edges, edge)
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return nil, HandleMongoError(cursorErr, "friendships")
	}

	return edges, nil
}

// friendshipDocument is the MongoDB document shape for a friendship edge.
type friendshipDocument struct {
	UserA     string    `bson:"user_a"`
	UserB     string    `bson:"user_b"`
	CreatedAt time.Time `bson:"created_at"`
}

func documentToFriendship(doc *friendshipDocument) (friendship.Friendship, error) {
	a, err := uuid.ParseUUID(doc.UserA)
	if err != nil {
		return friendship.Friendship{}, errs.ErrInvalidInput
	}
	b, err := uuid.ParseUUID(doc.UserB)
	if err != nil {
		return friendship.Friendship{}, errs.ErrInvalidInput
	}
	return friendship.Friendship{UserA: a, UserB: b, CreatedAt: doc.CreatedAt}, nil
}
