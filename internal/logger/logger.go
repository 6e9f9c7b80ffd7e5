// Package logger builds the command's structured logger: zap underneath,
// exposed as a logr.Logger.
package logger

import (
	"context"
	"errors"
	"io"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeStampKey = "timestamp"
	messageKey   = "message"
)

// Logger pairs a logr.Logger with the zap logger backing it, so callers can
// flush it before exiting.
type Logger struct {
	logr.Logger
	zap *zap.Logger
}

// New returns a logger writing console-encoded entries to w. With debug
// set, V(1) entries are enabled.
func New(w io.Writer, debug bool) *Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = timeStampKey
	encoderCfg.MessageKey = messageKey

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
	return &Logger{Logger: zapr.NewLogger(zl), zap: zl}
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return &Logger{Logger: logr.Discard(), zap: zap.NewNop()}
}

// Sync flushes buffered entries. Errors from syncing terminals and pipes
// are ignored.
func (l *Logger) Sync() error {
	if err := l.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return true
	}
	// Windows consoles report ERROR_INVALID_HANDLE as a plain PathError.
	return strings.Contains(err.Error(), "The handle is invalid")
}

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return logr.Discard()
}
