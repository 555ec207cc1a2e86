package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShortDb struct {
	Id            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	VideoURL      string             `json:"videoUrl" bson:"videoUrl"`
	VideoMimeType string             `json:"videoMimeType" bson:"videoMimeType"`
	Editor        primitive.ObjectID `json:"editor" bson:"editor"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

func (db *DB) GetShorts(ctx context.Context, args ...any) ([]ShortDb, error) {
	return findAll[ShortDb](ctx, db.Collection(ShortsCollection), args...)
}

func (db *DB) CountShorts(ctx context.Context, args ...any) (int, error) {
	return count(ctx, db.Collection(ShortsCollection), args...)
}

func (db *DB) GetShortById(ctx context.Context, id primitive.ObjectID) (ShortDb, error) {
	return findById[ShortDb](ctx, db.Collection(ShortsCollection), id)
}

func (db *DB) AddShort(ctx context.Context, short ShortDb) (ShortDb, error) {
	short.Id = primitive.NewObjectID()
	if short.CreatedAt.IsZero() {
		short.CreatedAt = time.Now().UTC()
	}

	if _, err := db.Collection(ShortsCollection).InsertOne(ctx, short); err != nil {
		return ShortDb{}, err
	}
	return short, nil
}

func (db *DB) UpdateShort(ctx context.Context, id primitive.ObjectID, set bson.M) (ShortDb, error) {
	if err := updateById(ctx, db.Collection(ShortsCollection), id, set); err != nil {
		return ShortDb{}, err
	}
	return db.GetShortById(ctx, id)
}

func (db *DB) DeleteShort(ctx context.Context, id primitive.ObjectID) error {
	return deleteById(ctx, db.Collection(ShortsCollection), id)
}
