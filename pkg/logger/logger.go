// Package logger wires zap into a logr.Logger for structured logging across
// the tabx CLI. Logs go to stderr as JSON so rendered tables on stdout stay
// clean for piping.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oakwood-commons/tabx/pkg/settings"
)

type loggerContextKey struct{}

const (
	versionKey   = "version"
	commitKey    = "commit"
	goVersionKey = "go_version"
	timestampKey = "timestamp"
	messageKey   = "message"
)

var (
	once sync.Once

	// zapLogger is kept around for Sync; application code only ever sees
	// the logr wrapper.
	zapLogger  *zap.Logger
	logrLogger *logr.Logger

	noopLogger = logr.Discard()
)

// Get initializes the global logger on first call and returns it. level
// follows zapcore conventions: 0 is Info, negative values enable Debug.
func Get(level int8) *logr.Logger {
	once.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.TimeKey = timestampKey
		encoderCfg.MessageKey = messageKey

		buildInfo, _ := debug.ReadBuildInfo()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.Level(level)),
		).With([]zapcore.Field{
			zap.String(versionKey, settings.VersionInformation.BuildVersion),
			zap.String(commitKey, settings.VersionInformation.Commit),
			zap.String(goVersionKey, buildInfo.GoVersion),
		})

		zapLogger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
		l := zapr.NewLogger(zapLogger)
		logrLogger = &l
	})
	if logrLogger == nil {
		return &noopLogger
	}
	return logrLogger
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger stored in ctx, falling back to the global
// logger and finally to a no-op logger when Get was never called.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	if logrLogger != nil {
		return logrLogger
	}
	return &noopLogger
}

// Sync flushes buffered log entries. Errors from syncing a tty or closed
// pipe are expected on process exit and are ignored.
func Sync() {
	if zapLogger == nil {
		return
	}
	if err := zapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) ||
		errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) ||
		errors.Is(err, syscall.EBADF)
}
