package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shredfile/internal/config"
)

// AuditLogger is the process-wide audit log handle. It is created unopened;
// Init opens the sink exactly once and Close flushes and releases it. Both
// are idempotent so a host may call the lifecycle hooks defensively. The
// shred engine refuses to run against a handle that is not Ready.
type AuditLogger struct {
	mu    sync.RWMutex
	log   *zap.Logger
	ready bool
}

// New возвращает неинициализированный логгер
func New() *AuditLogger {
	return &AuditLogger{}
}

// Init opens the log sink. Repeated calls are no-ops.
func (l *AuditLogger) Init(cfg *config.Config, verbose bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ready {
		return nil
	}
	if cfg == nil {
		cfg = config.Default()
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Logging.Level)),
		Encoding:         "console",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if cfg.Logging.Structured {
		zc.Encoding = "json"
	}

	if cfg.Logging.File != "" {
		logDir := filepath.Dir(cfg.Logging.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			// Не можем создать директорию - логи идут в stdout
			zc.OutputPaths = []string{"stdout"}
		} else if verbose {
			zc.OutputPaths = []string{"stdout", cfg.Logging.File}
		} else {
			zc.OutputPaths = []string{cfg.Logging.File}
		}
	}

	logger, err := zc.Build()
	if err != nil {
		return err
	}

	l.log = logger
	l.ready = true
	return nil
}

// Ready reports whether Init has completed and Close has not been called.
func (l *AuditLogger) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

// Close flushes and releases the sink. Repeated calls are no-ops.
func (l *AuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.ready {
		return nil
	}
	// Sync on a stdout sink fails on some platforms; the file sink flush is
	// what matters here.
	_ = l.log.Sync()
	l.ready = false
	return nil
}

func (l *AuditLogger) Debug(msg string, fields ...zap.Field) { l.emit(zapcore.DebugLevel, msg, fields) }
func (l *AuditLogger) Info(msg string, fields ...zap.Field)  { l.emit(zapcore.InfoLevel, msg, fields) }
func (l *AuditLogger) Warn(msg string, fields ...zap.Field)  { l.emit(zapcore.WarnLevel, msg, fields) }
func (l *AuditLogger) Error(msg string, fields ...zap.Field) { l.emit(zapcore.ErrorLevel, msg, fields) }

func (l *AuditLogger) emit(level zapcore.Level, msg string, fields []zap.Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.ready {
		return
	}
	if ce := l.log.Check(level, msg); ce != nil {
		ce.Write(fields...)
	}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
