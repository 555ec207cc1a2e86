package mongodb

import (
	"context"
	"fmt"

	"github.com/Gouravlamba/eminent-news/internal/logx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	UsersEmailIndexName      = "email_unique"
	NewsCreatedAtIndexName   = "createdAt_desc"
	ShortsCreatedAtIndexName = "createdAt_desc"
	AdsCategoryIndexName     = "category_createdAt"
	defaultIdIndexName       = "_id_"
)

// DeleteAllIndexes deletes all indexes from all collections in the database
// (except the default _id_ index which cannot be deleted)
func DeleteAllIndexes(ctx context.Context, db *mongo.Database) error {
	logger := logx.FromContext(ctx)

	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collName := range collections {
		names, err := listIndexNames(ctx, db.Collection(collName))
		if err != nil {
			return fmt.Errorf("failed to list indexes for collection '%s': %w", collName, err)
		}

		for _, indexName := range names {
			if indexName == defaultIdIndexName {
				continue
			}
			if _, err := db.Collection(collName).Indexes().DropOne(ctx, indexName); err != nil {
				return fmt.Errorf("failed to delete index '%s' from collection '%s': %w", indexName, collName, err)
			}
			logger.Info("deleted index", zap.String("index", indexName), zap.String("collection", collName))
		}
	}

	return nil
}

// CreateAllIndexes creates the indexes of every collection. With reset the
// existing ones are dropped and recreated.
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	if err := CreateNewsIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create news indexes: %w", err)
	}
	if err := CreateShortIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create short indexes: %w", err)
	}
	if err := CreateAdIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create ad indexes: %w", err)
	}
	return nil
}

// CreateUserIndexes creates the case-insensitive unique email index.
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(UsersEmailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}),
	}
	return createIndexIfNotExists(ctx, db.Collection(UsersCollection), emailIndex, UsersEmailIndexName, reset)
}

func CreateNewsIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName(NewsCreatedAtIndexName),
	}
	return createIndexIfNotExists(ctx, db.Collection(NewsCollection), createdAtIndex, NewsCreatedAtIndexName, reset)
}

func CreateShortIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName(ShortsCreatedAtIndexName),
	}
	return createIndexIfNotExists(ctx, db.Collection(ShortsCollection), createdAtIndex, ShortsCreatedAtIndexName, reset)
}

// CreateAdIndexes serves the category filter of the ads listing.
func CreateAdIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName(AdsCategoryIndexName),
	}
	return createIndexIfNotExists(ctx, db.Collection(AdsCollection), categoryIndex, AdsCategoryIndexName, reset)
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	logger := logx.FromContext(ctx).With(zap.String("index", indexName), zap.String("collection", coll.Name()))

	names, err := listIndexNames(ctx, coll)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	indexExists := false
	for _, name := range names {
		if name == indexName {
			indexExists = true
			break
		}
	}

	if indexExists {
		if !reset {
			logger.Info("index already exists, skipping")
			return nil
		}
		if _, err := coll.Indexes().DropOne(ctx, indexName); err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		logger.Info("deleted index")
	}

	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	logger.Info("created index")
	return nil
}

func listIndexNames(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return nil, fmt.Errorf("failed to decode index: %w", err)
		}
		if name, ok := index["name"].(string); ok {
			names = append(names, name)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return names, nil
}
