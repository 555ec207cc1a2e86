package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- DRY helpers shared by the collection files ---

func findById[T any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (T, error) {
	var out T
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return out, ErrRecordNotFound
		}
		return out, err
	}
	return out, nil
}

// findAll returns an empty, non-nil slice when nothing matches.
func findAll[T any](ctx context.Context, coll *mongo.Collection, args ...any) ([]T, error) {
	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func count(ctx context.Context, coll *mongo.Collection, args ...any) (int, error) {
	filter, _ := ResolveFilterAndOptionsSearch(args...)
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func updateById(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, set bson.M) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func deleteById(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
