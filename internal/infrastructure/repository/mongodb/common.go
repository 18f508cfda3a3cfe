// Package mongodb contains the MongoDB repositories and index bootstrap.
package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mittr/linkup/internal/domain/errs"
)

// Collection names.
const (
	CollectionUsers          = "users"
	CollectionFriendRequests = "friend_requests"
	CollectionFriendships    = "friendships"
)

// HandleMongoError normalizes a MongoDB error into a domain error.
// Returns:
//   - nil if err == nil
//   - errs.ErrNotFound when no document matched
//   - errs.ErrAlreadyExists on a unique constraint violation
//   - a wrapped error otherwise
func HandleMongoError(err error, resourceType string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrAlreadyExists
	}

	return fmt.Errorf("failed to operate on %s: %w", resourceType, err)
}

// UpsertOptions returns the standard options for an upsert.
func UpsertOptions() *options.UpdateOneOptionsBuilder {
	return options.UpdateOne().SetUpsert(true)
}
