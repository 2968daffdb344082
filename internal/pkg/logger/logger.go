package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"WebDev/internal/pkg/config"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global logger instance
	Log = zap.NewNop()
	// Sugar is the global sugared logger instance
	Sugar = Log.Sugar()

	// console receives the logs.stdout output
	console zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
)

// Init initializes the global logger with configuration
func Init(cfg *config.Config) error {
	if !cfg.Logs.Enabled {
		SetLogger(zap.NewNop())
		return nil
	}

	level, err := getLogLevel(cfg.Logs.Level)
	if err != nil {
		return err
	}

	writers, err := buildWriters(cfg)
	if err != nil {
		return err
	}

	core := zapcore.NewCore(
		buildEncoder(cfg.Logs.Format),
		zapcore.NewMultiWriteSyncer(writers...),
		zap.NewAtomicLevelAt(level),
	)

	// CallerSkip(1) skips the package-level wrappers below
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	SetLogger(l.With(zap.String("app", cfg.AppName)))

	Sugar.Debugf("Logger initialized with level: %s, format: %s", cfg.Logs.Level, cfg.Logs.Format)
	return nil
}

// SetLogger replaces the global logger, e.g. with an observer core in tests
func SetLogger(l *zap.Logger) {
	Log = l
	Sugar = l.Sugar()
}

// SetConsole redirects the console output of loggers built by later Init
// calls, e.g. to stderr for commands whose stdout is machine readable
func SetConsole(ws zapcore.WriteSyncer) {
	console = ws
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func buildWriters(cfg *config.Config) ([]zapcore.WriteSyncer, error) {
	var writers []zapcore.WriteSyncer

	if cfg.Logs.FilePath != "" {
		if err := os.MkdirAll(cfg.Logs.FilePath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(cfg.Logs.FilePath, strings.ToLower(cfg.AppName)+".log"),
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}))
	}

	if cfg.Logs.Stdout || len(writers) == 0 {
		writers = append(writers, console)
	}

	return writers, nil
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}

// getLogLevel converts a string level to a zapcore.Level
func getLogLevel(levelStr string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", levelStr)
	}
	return level, nil
}

// Debug logs a message at DebugLevel with structured fields
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs a message at InfoLevel with structured fields
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a message at WarnLevel with structured fields
func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

// Error logs a message at ErrorLevel with structured fields
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}
