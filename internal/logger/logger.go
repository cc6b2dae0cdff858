package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log *zap.SugaredLogger
)

// New собирает zap-логгер: json или console, debug или info
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build(zap.AddCallerSkip(1))
}

// Init инициализирует глобальный логгер
// env: "development" - читаемый console формат с debug, иначе JSON
func Init(env string) {
	dev := env == "development"
	if err := InitWith(!dev, dev); err != nil {
		// zap не собрался - лучше упасть сразу, чем молча терять логи
		panic(err)
	}
}

// InitWith инициализирует глобальный логгер с явными флагами (используется CLI)
func InitWith(json bool, debug bool) error {
	l, err := New(json, debug)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger подменяет глобальный логгер (тесты используют observer)
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l.Sugar()
}

// GetLogger возвращает глобальный логгер
func GetLogger() *zap.SugaredLogger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		Init("development")
		mu.RLock()
		l = log
		mu.RUnlock()
	}
	return l
}

// Sync сбрасывает буферы (вызывается перед выходом)
func Sync() {
	_ = GetLogger().Sync()
}

// ============================================
// Convenience функции
// ============================================

func Debug(msg string, args ...any) {
	GetLogger().Debugw(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Infow(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warnw(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Errorw(msg, args...)
}

// Fatal логирует ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Errorw(msg, args...)
	Sync()
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
// Пример: logger.With("source", "csv").Info("catalog loaded")
func With(args ...any) *zap.SugaredLogger {
	return GetLogger().With(args...)
}

// WithError создает логгер с полем error
func WithError(err error) *zap.SugaredLogger {
	return GetLogger().With("error", err.Error())
}

// WorkerLog логирует операцию фонового воркера
func WorkerLog(worker, operation string, err error, args ...any) {
	fields := append([]any{"worker", worker, "operation", operation}, args...)
	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Errorw("worker operation failed", fields...)
		return
	}
	GetLogger().Infow("worker operation completed", fields...)
}
