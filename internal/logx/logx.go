package logx

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// New builds the process logger: JSON output in production, colored console
// output otherwise. The logger is also installed as zap's global logger.
func New(production bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		cfg := zap.NewDevelopmentConfig()
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}
