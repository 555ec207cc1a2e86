package api

import (
	"context"
	"flag"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/Gouravlamba/eminent-news/internal/httpx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/testutil"
	"github.com/go-chi/chi/v5"
)

const testSecret = "test-secret"

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

// requireMongo skips the test without a database and otherwise hands out an
// empty one.
func requireMongo(t *testing.T) *mongodb.DB {
	t.Helper()
	if testDb == nil {
		t.Skip("MongoDB container not available")
	}
	testutil.ResetDB(t, testDb)
	return testDb
}

func newTestAPI(db *mongodb.DB) *API {
	return NewAPI(db, config.Config{
		JWTSecret:      testSecret,
		JWTExpire:      time.Hour,
		CookieExpire:   time.Hour,
		LoginRateLimit: 1000,
	}, nil)
}

// newTestServer mounts the routers the same way the application does.
func newTestServer(t *testing.T, a *API) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(httpx.BodyParser(ErrorHandler), httpx.CookieParser)
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Route("/api/v1", func(v1 chi.Router) {
		for _, router := range a.Routers() {
			v1.Group(router.Routes)
		}
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}
