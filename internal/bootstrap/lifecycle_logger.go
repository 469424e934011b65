package bootstrap

import (
	"context"
	"time"

	"hris-audit/internal/shared/contextutil"

	"go.uber.org/zap"
)

// LifecycleEvent describes a process-level event such as startup or shutdown.
type LifecycleEvent struct {
	Action  string
	Message string
	Meta    map[string]any
}

type LifecycleLogger interface {
	Log(ctx context.Context, event LifecycleEvent)
}

type ZapLifecycleLogger struct {
	logger *zap.Logger
}

func NewZapLifecycleLogger(logger *zap.Logger) *ZapLifecycleLogger {
	return &ZapLifecycleLogger{logger: logger.Named("lifecycle")}
}

func (l *ZapLifecycleLogger) Log(ctx context.Context, event LifecycleEvent) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", event.Action),
		zap.Any("meta", event.Meta),
	}
	if actor := contextutil.GetActor(ctx); actor != "" {
		fields = append(fields, zap.String("actor", actor))
	}
	l.logger.Info(event.Message, fields...)
}
