package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/seed"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	transaction := flag.Bool("transaction", false, "run the seed in one transaction (needs a replica set)")
	timeout := flag.Duration("timeout", time.Minute, "abort the seed after this long")
	flag.Parse()

	cfg := config.Load()
	logger, err := logx.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx = logx.WithLogger(ctx, logger)

	db, err := mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error(fmt.Sprintf("MongoDB connection error: %s", err))
		return 1
	}
	logger.Info("Connected to MongoDB", zap.String("database", db.GetDatabaseName()))

	disconnect := func() {
		if err := db.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
			return
		}
		logger.Info("Database connection closed")
	}

	if err := seed.Run(ctx, db, seed.Options{Transaction: *transaction}); err != nil {
		logger.Error(fmt.Sprintf("Error populating database: %s", err))
		disconnect()
		return 1
	}

	disconnect()
	return 0
}
