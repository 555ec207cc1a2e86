package seed

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testDb *mongodb.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	mongoC, err := testutil.StartMongo(ctx)
	if err != nil {
		log.Printf("MongoDB integration tests will be skipped: %v", err)
		os.Exit(m.Run())
	}

	testDb, err = mongodb.Open(ctx, mongoC.URI, testutil.TestDbName)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		log.Fatalf("failed to connect to test mongo: %v", err)
	}

	code := m.Run()

	_ = testDb.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func TestSampleData(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	newsItems := SampleNews(now)
	require.Len(t, newsItems, 3)
	require.Equal(t, "Breaking News 2", newsItems[1].Title)
	require.Equal(t, "Description for breaking news 2", newsItems[1].Description)
	require.Equal(t, EditorHex, newsItems[0].Editor.Hex())

	adItems := SampleAds(now)
	require.Len(t, adItems, 3)
	require.Equal(t, []string{"Electronics", "Fashion", "Automotive"},
		[]string{adItems[0].Category, adItems[1].Category, adItems[2].Category})
	require.Equal(t, "Ad 3", adItems[2].Title)

	shortItems := SampleShorts(now)
	require.Len(t, shortItems, 3)
	require.Equal(t, "http://example.com/short1.mp4", shortItems[0].VideoURL)
	for _, s := range shortItems {
		require.Equal(t, "video/mp4", s.VideoMimeType)
		require.Equal(t, EditorHex, s.Editor.Hex())
	}
}

func TestRunIsIdempotentInContent(t *testing.T) {
	if testDb == nil {
		t.Skip("MongoDB container not available")
	}
	testutil.ResetDB(t, testDb)
	ctx := context.Background()

	// leftovers from earlier runs must disappear
	_, err := testDb.Collection(mongodb.NewsCollection).InsertOne(ctx, bson.M{"title": "stale"})
	require.NoError(t, err)

	for run := 0; run < 2; run++ {
		require.NoError(t, Run(ctx, testDb, Options{}))

		for _, name := range []string{mongodb.NewsCollection, mongodb.AdsCollection, mongodb.ShortsCollection} {
			count, err := testDb.Collection(name).CountDocuments(ctx, bson.M{})
			require.NoError(t, err)
			require.EqualValues(t, 3, count, "collection %s after run %d", name, run+1)
		}
	}

	cursor, err := testDb.Collection(mongodb.NewsCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	require.NoError(t, err)
	var stored []mongodb.NewsDb
	require.NoError(t, cursor.All(ctx, &stored))
	require.Equal(t, "Breaking News 1", stored[0].Title)
	require.Equal(t, "Breaking News 3", stored[2].Title)
}

func TestRunLeavesOtherCollectionsAlone(t *testing.T) {
	if testDb == nil {
		t.Skip("MongoDB container not available")
	}
	testutil.ResetDB(t, testDb)
	ctx := context.Background()

	_, err := testDb.Collection(mongodb.UsersCollection).InsertOne(ctx, bson.M{"email": "keep@eminent.news"})
	require.NoError(t, err)

	require.NoError(t, Run(ctx, testDb, Options{}))

	count, err := testDb.Collection(mongodb.UsersCollection).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
