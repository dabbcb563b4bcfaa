package log

import (
	"runtime"
	"strings"

	"toncenter-client/internal/conf"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

func callerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(strings.Join([]string{caller.TrimmedPath(), runtime.FuncForPC(caller.PC).Name()}, ":"))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func newLoggerConfig(c *conf.Logger) (loggerConfig zap.Config) {
	if c.DEBUG {
		loggerConfig = zap.NewDevelopmentConfig()
		loggerConfig.Development = true
	} else {
		loggerConfig = zap.NewProductionConfig()
		loggerConfig.DisableCaller = true
	}
	loggerConfig.OutputPaths = []string{c.FileName}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.EncoderConfig.EncodeCaller = callerEncoder
	loggerConfig.Level = zap.NewAtomicLevelAt(parseLevel(c.Level))
	return
}

// BootstrapLogger builds the process logger and returns it so it can be
// handed to the API client. The package helpers skip their own frame.
func BootstrapLogger(c *conf.Logger) (*zap.Logger, error) {
	l, err := newLoggerConfig(c).Build()
	if err != nil {
		return nil, errors.Wrap(err, "error of init logger")
	}
	logger = l.WithOptions(zap.AddCallerSkip(1))
	return l, nil
}

func Logger() *zap.Logger {
	return logger
}

func Sync() {
	_ = logger.Sync()
}

func Info(msg string, args ...zap.Field) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...zap.Field) {
	logger.Debug(msg, args...)
}

func Warn(msg string, args ...zap.Field) {
	logger.Warn(msg, args...)
}

func Warne(msg string, err error) {
	logger.Warn(msg, zap.Any("warn", err))
}

func Error(msg string, args ...zap.Field) {
	logger.Error(msg, args...)
}

func Errore(msg string, err error) {
	logger.Error(msg, zap.Any("error", err))
}
