package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// IndexDefinition describes a MongoDB index to be created.
type IndexDefinition struct {
	Collection string
	Keys       bson.D
	Options    *options.IndexOptionsBuilder
}

// CreateAllIndexes creates every index the service relies on. Idempotent.
// The unique edge indexes are load-bearing: they enforce the no-duplicate
// invariants even against writers outside this process.
func CreateAllIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range allIndexDefinitions() {
		model := mongo.IndexModel{
			Keys:    idx.Keys,
			Options: idx.Options,
		}
		if _, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.Collection, err)
		}
	}
	return nil
}

func allIndexDefinitions() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: CollectionUsers,
			Keys:       bson.D{{Key: "user_id", Value: 1}},
			Options:    options.Index().SetUnique(true),
		},
		{
			Collection: CollectionUsers,
			Keys:       bson.D{{Key: "username", Value: 1}},
			Options:    options.Index().SetUnique(true),
		},
		{
			Collection: CollectionUsers,
			Keys:       bson.D{{Key: "email", Value: 1}},
			Options:    options.Index().SetUnique(true),
		},
		{
			Collection: CollectionFriendRequests,
			Keys:       bson.D{{Key: "from_id", Value: 1}, {Key: "to_id", Value: 1}},
			Options:    options.Index().SetUnique(true),
		},
		{
			Collection: CollectionFriendRequests,
			Keys:       bson.D{{Key: "to_id", Value: 1}, {Key: "sent_at", Value: 1}},
		},
		{
			Collection: CollectionFriendships,
			Keys:       bson.D{{Key: "user_a", Value: 1}, {Key: "user_b", Value: 1}},
			Options:    options.Index().SetUnique(true),
		},
		{
			Collection: CollectionFriendships,
			Keys:       bson.D{{Key: "user_b", Value: 1}},
		},
	}
}
