package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// zapLogger implements Logger using zap, optionally teeing into a
// size-rotated log file via lumberjack.
type zapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger creates a new Logger backed by zap.
func NewZapLogger(cfg Config) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "text":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	level := toZapLevel(cfg.Level)
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // MB
			MaxBackups: 30,
			MaxAge:     90, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(rotated),
			level,
		))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel))
	return &zapLogger{logger: z.Sugar()}
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// fieldsToPairs converts Field slices to zap's sugared key/value form
func fieldsToPairs(fields []Field) []any {
	pairs := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		pairs = append(pairs, f.Key, f.Value)
	}
	return pairs
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debugw(msg, fieldsToPairs(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Infow(msg, fieldsToPairs(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warnw(msg, fieldsToPairs(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Errorw(msg, fieldsToPairs(fields)...)
}

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(fieldsToPairs(fields)...)}
}

func (l *zapLogger) WithContext(ctx context.Context) Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}
