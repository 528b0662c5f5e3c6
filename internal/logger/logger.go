package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger with user context information
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if userID, ok := ctx.Value("user_id").(string); ok && userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	} else {
		logger.Entry = logger.Entry.WithField("user", "anonymous")
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
