package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output through slog. Statements are logged with the
// request-scoped logger when one is on the context, so SQL lines carry the
// request and session IDs of the visitor that triggered them.
type queryLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	now           func() time.Time
}

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &queryLogger{
		logger:        baseLogger.With(slog.String("component", "postgres")),
		level:         gormlogger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
		now:           time.Now,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Storage.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, enabledAt gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < enabledAt {
		return
	}
	l.from(ctx).LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// Missing rows are the normal outcome of a key-value miss and are not errors here.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	elapsed := l.now().Sub(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.Any("error", err))
		l.from(ctx).LogAttrs(ctx, slog.LevelError, "Database query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow database query", attrs...)
	case l.level >= gormlogger.Info:
		l.from(ctx).LogAttrs(ctx, slog.LevelDebug, "Database query", statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *queryLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, l.logger)
}

func statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
