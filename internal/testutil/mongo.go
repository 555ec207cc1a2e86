// Package testutil starts the MongoDB container shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	MongoImage = "mongo:7.0"
	TestDbName = "testDb"
)

// Mongo is a running MongoDB container.
type Mongo struct {
	URI       string
	container testcontainers.Container
}

// StartMongo returns an error instead of panicking when Docker is missing,
// so callers can skip their integration tests.
func StartMongo(ctx context.Context) (m *Mongo, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			m, err = nil, fmt.Errorf("docker unavailable: %v", rec)
		}
	}()

	req := testcontainers.ContainerRequest{
		Image:        MongoImage,
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mongo container: %w", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mongo endpoint: %w", err)
	}

	return &Mongo{URI: "mongodb://" + endpoint, container: mongoC}, nil
}

func (m *Mongo) Terminate(ctx context.Context) error {
	return m.container.Terminate(ctx)
}

// ResetDB drops every collection of the test database.
func ResetDB(t *testing.T, db *mongodb.DB) {
	t.Helper()

	ctx := context.Background()
	database := db.Database()

	collections, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	for _, coll := range collections {
		if err := database.Collection(coll).Drop(ctx); err != nil {
			t.Fatalf("failed to drop collection %s: %v", coll, err)
		}
	}
}
