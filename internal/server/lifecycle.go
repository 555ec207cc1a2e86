package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/api"
	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/services/shorts"
	"github.com/Gouravlamba/eminent-news/internal/storage"
	"go.uber.org/zap"
)

type State int

const (
	StateStarting State = iota
	StateConnectingDB
	StateListening
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "Starting"
	case StateConnectingDB:
		return "ConnectingDB"
	case StateListening:
		return "Listening"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateTerminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	ExitOK      = 0
	ExitFailure = 1

	readHeaderTimeout      = 10 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

type ConnectFunc func(ctx context.Context, cfg config.Config) (*mongodb.DB, error)

type Options struct {
	Config config.Config
	Logger *zap.Logger

	// Connect defaults to mongodb.Open with the configured URL and database.
	Connect ConnectFunc
	// Videos overrides the store built from Config.S3.
	Videos shorts.VideoStore
	// Tasks run under the supervisor next to the HTTP server.
	Tasks []func(ctx context.Context) error

	OnStateChange func(State)
	OnListening   func(net.Addr)
}

func defaultConnect(ctx context.Context, cfg config.Config) (*mongodb.DB, error) {
	return mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
}

// Run starts the server and blocks until it terminates, returning the
// process exit code. The listener is only bound after the database answered
// a ping. Cancelling ctx shuts down gracefully with ExitOK; a fault in a
// supervised goroutine shuts down with ExitFailure.
func Run(ctx context.Context, opts Options) int {
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}
	setState := func(s State) {
		logger.Debug("server state", zap.Stringer("state", s))
		if opts.OnStateChange != nil {
			opts.OnStateChange(s)
		}
	}
	connect := opts.Connect
	if connect == nil {
		connect = defaultConnect
	}
	cfg := opts.Config
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	setState(StateStarting)

	setState(StateConnectingDB)
	db, err := connect(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("MongoDB connection error: %s", err))
		setState(StateTerminated)
		return ExitFailure
	}
	logger.Info("MongoDB connected", zap.String("database", db.GetDatabaseName()))

	disconnect := func() {
		dctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := db.Disconnect(dctx); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}

	videos := opts.Videos
	if videos == nil {
		videos = newVideoStore(ctx, cfg.S3, logger)
	}
	app := api.NewAPI(db, cfg, videos)

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Error("failed to bind listener", zap.String("port", cfg.Port), zap.Error(err))
		disconnect()
		setState(StateTerminated)
		return ExitFailure
	}

	srv := &http.Server{
		Handler:           NewHandler(app.Routers()...),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(logger),
	}

	setState(StateListening)
	logger.Info(fmt.Sprintf("Backend Server is working on http://localhost:%d", ln.Addr().(*net.TCPAddr).Port))
	if opts.OnListening != nil {
		opts.OnListening(ln.Addr())
	}

	sup := NewSupervisor(ctx)
	sup.Go(func(context.Context) error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	sup.Go(app.LoginLimiter.Cleanup)
	for _, task := range opts.Tasks {
		sup.Go(task)
	}

	<-sup.Context().Done()

	fault := sup.Fault()
	if fault != nil {
		logger.Error(fmt.Sprintf("Error : %s", fault.Err))
		logger.Error(fault.Diagnostic())
	} else {
		logger.Info("Shutdown signal received, shutting down the server")
	}

	setState(StateShuttingDown)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown timed out, closing connections", zap.Error(err))
		_ = srv.Close()
	}
	_ = sup.Wait()
	disconnect()
	setState(StateTerminated)

	return ExitCode(fault)
}

func ExitCode(fault *Fault) int {
	if fault != nil {
		return ExitFailure
	}
	return ExitOK
}

// newVideoStore returns nil when uploads are not configured or the S3
// client cannot be built; the upload route then answers 503.
func newVideoStore(ctx context.Context, cfg config.S3Config, logger *zap.Logger) shorts.VideoStore {
	if !cfg.Enabled() {
		logger.Info("S3_BUCKET not set, short video uploads are disabled")
		return nil
	}
	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		logger.Error("failed to configure S3, short video uploads are disabled", zap.Error(err))
		return nil
	}
	return store
}
