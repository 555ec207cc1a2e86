package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	connectTimeout      = 10 * time.Second
	defaultDatabaseName = "test"
)

// Connect connects to MongoDB and verifies the connection with a ping, so a
// returned client is known to be usable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Open connects and wraps the client in a DB bound to the database named by
// override, by the path of uri, or "test" as a last resort.
func Open(ctx context.Context, uri, override string) (*DB, error) {
	client, err := Connect(ctx, uri)
	if err != nil {
		return nil, err
	}
	return NewDB(client, DatabaseName(uri, override)), nil
}

func DatabaseName(uri, override string) string {
	if name := strings.TrimSpace(override); name != "" {
		return name
	}
	if cs, err := connstring.ParseAndValidate(uri); err == nil && cs.Database != "" {
		return cs.Database
	}
	return defaultDatabaseName
}
