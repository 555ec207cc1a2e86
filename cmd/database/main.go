package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Gouravlamba/eminent-news/internal/auth"
	"github.com/Gouravlamba/eminent-news/internal/config"
	"github.com/Gouravlamba/eminent-news/internal/logx"
	"github.com/Gouravlamba/eminent-news/internal/mongodb"
	"github.com/Gouravlamba/eminent-news/internal/services/users"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	indexes := flag.Bool("indexes", false, "create indexes in the database if they do not exist")
	resetIndexes := flag.Bool("reset", false, "Delete the indexes and recreate it")
	deleteIndexes := flag.Bool("delete", false, "Delete the indexes")
	superuser := flag.Bool("superuser", false, "create a superuser if it does not exist")
	flag.Parse()

	cfg := config.Load()
	logger, err := logx.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx := logx.WithLogger(context.Background(), logger)
	db, err := mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error(fmt.Sprintf("MongoDB connection error: %s", err))
		return 1
	}
	defer db.Disconnect(context.Background())

	switch {
	case *deleteIndexes:
		if err := mongodb.DeleteAllIndexes(ctx, db.Database()); err != nil {
			logger.Error("failed to delete indexes", zap.Error(err))
			return 1
		}
		logger.Info("all indexes deleted")

	case *indexes || *resetIndexes:
		if err := mongodb.CreateAllIndexes(ctx, db.Database(), *resetIndexes); err != nil {
			logger.Error("failed to create indexes", zap.Error(err))
			return 1
		}
		logger.Info("indexes command ran successfully")

	case *superuser:
		if err := createSuperuser(ctx, db, superuserFromEnv()); err != nil {
			logger.Error("failed to create superuser", zap.Error(err))
			return 1
		}
		logger.Info("superuser command ran successfully")

	default:
		fmt.Println("No valid command specified.")
		flag.Usage()
	}

	return 0
}

func superuserFromEnv() users.NewUserRequest {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SUPERUSER_NAME", "admin")
	_ = v.BindEnv("SUPERUSER_EMAIL")
	_ = v.BindEnv("SUPERUSER_PASSWORD")

	return users.NewUserRequest{
		Name:     strings.TrimSpace(v.GetString("SUPERUSER_NAME")),
		Email:    strings.TrimSpace(v.GetString("SUPERUSER_EMAIL")),
		Password: v.GetString("SUPERUSER_PASSWORD"),
	}
}

// createSuperuser is a no-op when the email is already registered.
func createSuperuser(ctx context.Context, db *mongodb.DB, req users.NewUserRequest) error {
	logger := logx.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return errors.New("SUPERUSER_EMAIL and SUPERUSER_PASSWORD must be set")
	}

	userDb, err := users.AddUser(db, ctx, req, auth.RoleAdmin)
	if errors.Is(err, users.ErrEmailAlreadyExists) {
		logger.Info("superuser already exists, skipping", zap.String("email", req.Email))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("superuser created", zap.String("id", userDb.Id.Hex()), zap.String("email", userDb.Email))
	return nil
}
