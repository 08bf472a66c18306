package logger

import (
	"context"
	"log/slog"
	"time"
)

type slogLogger struct {
	logger *slog.Logger
	level  Level
}

// NewSlogLogger creates a Logger backed by log/slog. Format "text" selects
// the key=value handler; anything else writes JSON.
func NewSlogLogger(cfg Config) Logger {
	opts := &slog.HandlerOptions{
		Level:       toSlogLevel(cfg.Level),
		AddSource:   cfg.AddSource,
		ReplaceAttr: formatDurations,
	}

	var handler slog.Handler = slog.NewJSONHandler(cfg.output(), opts)
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.output(), opts)
	}

	return &slogLogger{logger: slog.New(handler), level: cfg.Level}
}

// formatDurations writes durations as "1.5ms" strings, matching the zap backend.
func formatDurations(_ []string, a slog.Attr) slog.Attr {
	if d, ok := a.Value.Any().(time.Duration); ok {
		return slog.String(a.Key, d.String())
	}
	return a
}

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func toSlogLevel(l Level) slog.Level {
	if sl, ok := slogLevels[l]; ok {
		return sl
	}
	return slog.LevelInfo
}

func toSlogAttrs(fields []Field) []slog.Attr {
	attrs := make([]slog.Attr, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	return attrs
}

func (l *slogLogger) log(level Level, msg string, fields []Field) {
	l.logger.LogAttrs(context.Background(), toSlogLevel(level), msg, toSlogAttrs(fields)...)
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *slogLogger) With(fields ...Field) Logger {
	attrs := toSlogAttrs(fields)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return &slogLogger{logger: l.logger.With(args...), level: l.level}
}

func (l *slogLogger) WithContext(ctx context.Context) Logger {
	if fields := extractContextFields(ctx); len(fields) > 0 {
		return l.With(fields...)
	}
	return l
}

func (l *slogLogger) Level() Level {
	return l.level
}
