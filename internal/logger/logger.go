// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures logrus and attaches request ids to log entries.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey ctxKey = "requestId"

// SlowThreshold marks operations Track reports at warn level.
var SlowThreshold = 500 * time.Millisecond

// Setup sets the level and formatter of the standard logrus logger. format
// is "json" or "text"; anything else is treated as text.
func Setup(level, format string, out io.Writer) error {
	if err := SetLevel(level); err != nil {
		return err
	}
	if out != nil {
		logrus.SetOutput(out)
	}
	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
	return nil
}

// SetLevel parses and applies a level name. An empty name means info.
func SetLevel(level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// For returns a log entry carrying the request id of ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("request_id", id)
}

// ContextWithID stores a request id in ctx.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// IDFrom returns the request id stored in ctx, or "".
func IDFrom(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Track logs how long an operation took once the returned func is called.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())
		if dur > SlowThreshold {
			entry.Warnf("%s completed (slow)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
