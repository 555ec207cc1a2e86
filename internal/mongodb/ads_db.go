package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdDb struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

func (db *DB) GetAds(ctx context.Context, args ...any) ([]AdDb, error) {
	return findAll[AdDb](ctx, db.Collection(AdsCollection), args...)
}

func (db *DB) CountAds(ctx context.Context, args ...any) (int, error) {
	return count(ctx, db.Collection(AdsCollection), args...)
}

func (db *DB) GetAdById(ctx context.Context, id primitive.ObjectID) (AdDb, error) {
	return findById[AdDb](ctx, db.Collection(AdsCollection), id)
}

func (db *DB) AddAd(ctx context.Context, ad AdDb) (AdDb, error) {
	ad.Id = primitive.NewObjectID()
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now().UTC()
	}

	if _, err := db.Collection(AdsCollection).InsertOne(ctx, ad); err != nil {
		return AdDb{}, err
	}
	return ad, nil
}

func (db *DB) UpdateAd(ctx context.Context, id primitive.ObjectID, set bson.M) (AdDb, error) {
	if err := updateById(ctx, db.Collection(AdsCollection), id, set); err != nil {
		return AdDb{}, err
	}
	return db.GetAdById(ctx, id)
}

func (db *DB) DeleteAd(ctx context.Context, id primitive.ObjectID) error {
	return deleteById(ctx, db.Collection(AdsCollection), id)
}
