// Package zaplogger wraps zap with a console logger shared across the API.
package zaplogger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log   *zap.Logger
	level zap.AtomicLevel
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]interface{}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05"))
}

func init() {
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	config := zap.Config{
		Encoding:         "console",
		Level:            level,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "message",
			LevelKey:     "level",
			TimeKey:      "time",
			CallerKey:    "caller",
			EncodeLevel:  zapcore.CapitalColorLevelEncoder,
			EncodeTime:   customTimeEncoder,
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	var err error
	log, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// SetLogLevel sets the logging level
func SetLogLevel(l string) {
	switch l {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "info":
		level.SetLevel(zapcore.InfoLevel)
	case "warn":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Debug logs a debug message
func Debug(msg string, fields ...Fields) {
	log.Debug(msg, zapFields(fields)...)
}

// Info logs an info message
func Info(msg string, fields ...Fields) {
	log.Info(msg, zapFields(fields)...)
}

// Warn logs a warning message
func Warn(msg string, fields ...Fields) {
	log.Warn(msg, zapFields(fields)...)
}

// Error logs an error message
func Error(msg string, fields ...Fields) {
	log.Error(msg, zapFields(fields)...)
}

// Fatal logs a fatal message and exits the program
func Fatal(msg string, fields ...Fields) {
	log.Fatal(msg, zapFields(fields)...)
}

// WithFields adds fields to the logger
func WithFields(fields Fields) *zap.Logger {
	return log.With(zapFields([]Fields{fields})...)
}

func zapFields(fields []Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(fields[0]))
	for k, v := range fields[0] {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

// Sync flushes any buffered log entries
func Sync() error {
	return log.Sync()
}
