package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ----- Types for the database -----

type NewsDb struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Editor      primitive.ObjectID `json:"editor" bson:"editor"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) GetNews(ctx context.Context, args ...any) ([]NewsDb, error) {
	return findAll[NewsDb](ctx, db.Collection(NewsCollection), args...)
}

func (db *DB) CountNews(ctx context.Context, args ...any) (int, error) {
	return count(ctx, db.Collection(NewsCollection), args...)
}

func (db *DB) GetNewsById(ctx context.Context, id primitive.ObjectID) (NewsDb, error) {
	return findById[NewsDb](ctx, db.Collection(NewsCollection), id)
}

func (db *DB) AddNews(ctx context.Context, news NewsDb) (NewsDb, error) {
	news.Id = primitive.NewObjectID()
	if news.CreatedAt.IsZero() {
		news.CreatedAt = time.Now().UTC()
	}

	if _, err := db.Collection(NewsCollection).InsertOne(ctx, news); err != nil {
		return NewsDb{}, err
	}
	return news, nil
}

func (db *DB) UpdateNews(ctx context.Context, id primitive.ObjectID, set bson.M) (NewsDb, error) {
	if err := updateById(ctx, db.Collection(NewsCollection), id, set); err != nil {
		return NewsDb{}, err
	}
	return db.GetNewsById(ctx, id)
}

func (db *DB) DeleteNews(ctx context.Context, id primitive.ObjectID) error {
	return deleteById(ctx, db.Collection(NewsCollection), id)
}
