package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cotiza/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged at Warn regardless of level.
const slowQueryThreshold = 200 * time.Millisecond

// slogQueryLogger adapts GORM's logger.Interface onto the process slog
// logger. record-not-found is not treated as an error; repositories map it
// to their own sentinels.
type slogQueryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newQueryLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &slogQueryLogger{logger: baseLogger, level: level}
}

func (l *slogQueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *slogQueryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args...)
}

func (l *slogQueryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args...)
}

func (l *slogQueryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Error, slog.LevelError, "GORM error", msg, args...)
}

func (l *slogQueryLogger) print(ctx context.Context, min logger.LogLevel, level slog.Level, title string, msg string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	l.logger.LogAttrs(ctx, level, title,
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *slogQueryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := elapsed > slowQueryThreshold

	switch {
	case failed && l.level >= logger.Error:
		l.traceLog(ctx, slog.LevelError, "GORM query failed", sqlAndRowsFn, elapsed,
			slog.String("error", err.Error()))
	case slow && l.level >= logger.Warn:
		l.traceLog(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed,
			slog.Duration("slowThreshold", slowQueryThreshold))
	case l.level >= logger.Info:
		l.traceLog(ctx, slog.LevelInfo, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *slogQueryLogger) traceLog(ctx context.Context, level slog.Level, title string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger.LogAttrs(ctx, level, title, attrs...)
}
