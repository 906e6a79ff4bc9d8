// Package logger carries a logrus logger on a context.Context.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Logger returns the logger stored on ctx, or the logrus standard logger.
func Logger(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
			return l
		}
	}

	return logrus.StandardLogger()
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, l)
}

// New builds a logger writing to w at level. JSON output is used when
// json is set; otherwise text, colored only when w is a terminal and
// NO_COLOR is unset.
func New(w io.Writer, level logrus.Level, json bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
		return l
	}
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:   Colorable(w),
		DisableColors: !Colorable(w),
		FullTimestamp: true,
		PadLevelText:  true,
	})

	return l
}

// Colorable reports whether w is a terminal that accepts colors.
func Colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if _, off := os.LookupEnv("NO_COLOR"); off {
		return false
	}
	if t := os.Getenv("TERM"); t == "dumb" || t == "unknown" {
		return false
	}

	return true
}
