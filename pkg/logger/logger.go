// Package logger provides the store's structured, levelled logger built on
// log/slog.
//
// Services never hold a logger of their own; they ask for one through
// WithCtx so that everything logged during a checkout attempt carries the
// attempt id:
//
//	ctx = logger.InjectLogger(ctx, logger.L.With("attempt_id", id))
//	logger.WithCtx(ctx).Info("order placed", "order_id", order.ID)
//	// → time=... level=INFO msg="order placed" attempt_id=9f1c... order_id=1718000000000
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/pitstore/config"
)

var L *slog.Logger

func init() {
	L = New(config.AppEnv(), os.Stderr)
	slog.SetDefault(L)
}

// New builds a logger for env. Production environments get JSON at INFO,
// everything else human-readable text at DEBUG.
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Discard returns a logger that drops every record. Tests use it to keep
// output quiet.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ctxKey struct{}

// WithCtx returns the logger stored in ctx by InjectLogger, or the base
// logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return L
	}
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log in ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
