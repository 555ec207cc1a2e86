package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	NewsCollection   = "news"
	AdsCollection    = "ads"
	ShortsCollection = "shorts"
	UsersCollection  = "users"
)

var (
	ErrRecordNotFound = errors.New("record not found in the database")
	ErrInvalidId      = errors.New("invalid id")
)

// DB is the single database handle of a process. It is safe for concurrent
// use; every request shares it.
type DB struct {
	client *mongo.Client
	name   string
}

func NewDB(client *mongo.Client, name string) *DB {
	return &DB{client: client, name: name}
}

func (db *DB) Client() *mongo.Client {
	return db.client
}

func (db *DB) GetDatabaseName() string {
	return db.name
}

func (db *DB) Database() *mongo.Database {
	return db.client.Database(db.name)
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database().Collection(name)
}

func (db *DB) Disconnect(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// ParseId converts a hex string into an ObjectID. The returned error wraps
// both ErrInvalidId and primitive.ErrInvalidHex.
func ParseId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrInvalidId, err)
	}
	return oid, nil
}

func ResolveFilterAndOptionsSearch(args ...any) (bson.M, []*options.FindOptions) {
	filter := bson.M{}
	var opts []*options.FindOptions

	for _, arg := range args {
		switch v := arg.(type) {
		case bson.M:
			filter = v
		case *options.FindOptions:
			opts = append(opts, v)
		default:
			// Just ignore if no args match
		}
	}

	return filter, opts
}
