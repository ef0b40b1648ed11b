package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	global = New(level)
)

// New creates a sugared logger writing console-encoded records to stderr.
// A nil level enabler falls back to the package level.
func New(lvl zapcore.LevelEnabler) *zap.SugaredLogger {
	if lvl == nil {
		lvl = level
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		lvl,
	)

	return zap.New(core).Sugar()
}

// ParseLogLevel converts a level name into a zap level.
// Unknown names return InfoLevel and false.
func ParseLogLevel(name string) (zapcore.Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zapcore.InfoLevel, false
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel, false
	}

	return lvl, true
}

// Level returns the current package level.
func Level() zapcore.Level {
	return level.Level()
}

// SetLevel changes the package level at runtime.
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}

// IsDebugLevel reports whether debug records are emitted.
func IsDebugLevel() bool {
	return level.Enabled(zapcore.DebugLevel)
}

// Logger returns the global logger.
func Logger() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()

	global = l
}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or the global logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && l != nil {
			return l
		}
	}

	return Logger()
}

func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Debug(args...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}

func DebugKV(ctx context.Context, msg string, kv ...any) {
	FromContext(ctx).Debugw(msg, kv...)
}

func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Info(args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Warn(args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, args ...any) {
	FromContext(ctx).Error(args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// Sync flushes buffered records. Errors from syncing stderr are ignored.
func Sync() {
	_ = Logger().Sync()
}
