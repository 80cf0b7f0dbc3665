package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"
)

// NewZerolog returns a Logger that writes through zl. Arguments follow the
// slog convention: alternating key/value pairs or slog.Attr values.
func NewZerolog(zl zerolog.Logger) Logger {
	return &zeroLogger{logger: zl}
}

type zeroLogger struct {
	logger zerolog.Logger
}

func (l *zeroLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Debug(), msg, args)
}

func (l *zeroLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Info(), msg, args)
}

func (l *zeroLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Warn(), msg, args)
}

func (l *zeroLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, l.logger.Error(), msg, args)
}

func (l *zeroLogger) With(args ...any) Logger {
	fields := attrs(args)
	c := l.logger.With()
	for _, a := range fields {
		c = c.Interface(a.Key, a.Value.Any())
	}
	return &zeroLogger{logger: c.Logger()}
}

func (l *zeroLogger) emit(ctx context.Context, ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	if ctx != nil {
		ev = ev.Ctx(ctx)
	}
	for _, a := range attrs(args) {
		ev = ev.Interface(a.Key, a.Value.Any())
	}
	ev.Msg(msg)
}

// attrs normalises slog-style arguments. A dangling key is reported under
// "!BADKEY", matching slog.
func attrs(args []any) []slog.Attr {
	out := make([]slog.Attr, 0, len(args))
	for len(args) > 0 {
		switch v := args[0].(type) {
		case slog.Attr:
			out = append(out, v)
			args = args[1:]
		case string:
			if len(args) == 1 {
				out = append(out, slog.String("!BADKEY", v))
				return out
			}
			out = append(out, slog.Any(v, args[1]))
			args = args[2:]
		default:
			out = append(out, slog.String("!BADKEY", fmt.Sprint(v)))
			args = args[1:]
		}
	}
	return out
}
