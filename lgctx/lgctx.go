package lgctx

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/smartguard/log"
)

type contextKey struct{}

var loggerKey = contextKey{}

func NewContext(parent context.Context, logger lager.Logger) context.Context {
	return context.WithValue(parent, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or a silent one.
func FromContext(ctx context.Context) lager.Logger {
	logger, ok := ctx.Value(loggerKey).(lager.Logger)
	if !ok {
		return log.NewNullLogger()
	}

	return logger
}

func WithSession(ctx context.Context, task string, data ...lager.Data) lager.Logger {
	return FromContext(ctx).Session(task, data...)
}

func WithData(ctx context.Context, data lager.Data) lager.Logger {
	return FromContext(ctx).WithData(data)
}
