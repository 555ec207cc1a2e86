// Package seed replaces the news, ads and shorts collections with a fixed
// set of sample documents.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Options struct {
	// Transaction runs the whole seed in one multi-document transaction.
	// It needs a replica set or a sharded cluster.
	Transaction bool
}

// Run clears news, ads and shorts in that order and then inserts the sample
// data in the same order. Running it twice leaves the same content.
func Run(ctx context.Context, db *mongodb.DB, opts Options) error {
	if !opts.Transaction {
		return populate(ctx, db)
	}

	session, err := db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, populate(sc, db)
	})
	return err
}

func populate(ctx context.Context, db *mongodb.DB) error {
	logger := logx.FromContext(ctx)
	collections := []string{mongodb.NewsCollection, mongodb.AdsCollection, mongodb.ShortsCollection}

	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	logger.Info("Cleared existing data")

	now := time.Now().UTC()
	if err := insertAll(ctx, db, mongodb.NewsCollection, SampleNews(now)); err != nil {
		return err
	}
	logger.Info("News collection populated")

	if err := insertAll(ctx, db, mongodb.AdsCollection, SampleAds(now)); err != nil {
		return err
	}
	logger.Info("Ads collection populated")

	if err := insertAll(ctx, db, mongodb.ShortsCollection, SampleShorts(now)); err != nil {
		return err
	}
	logger.Info("Shorts collection populated")

	return nil
}

func insertAll[T any](ctx context.Context, db *mongodb.DB, collection string, docs []T) error {
	items := make([]interface{}, len(docs))
	for i, d := range docs {
		items[i] = d
	}
	if _, err := db.Collection(collection).InsertMany(ctx, items); err != nil {
		return fmt.Errorf("failed to populate %s: %w", collection, err)
	}
	return nil
}
