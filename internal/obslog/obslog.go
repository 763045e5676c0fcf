// Package obslog builds the process zap logger from configuration.
package obslog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/ludo-go/internal/config"
)

// New builds a logger writing to stderr and, when cfg.File is set, to that
// file as well. The returned close function flushes and closes the file.
func New(cfg *config.LogConfig) (*zap.Logger, func() error, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with the console stream replaced by w.
func NewWithWriter(cfg *config.LogConfig, w io.Writer) (*zap.Logger, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level := ParseLevel(cfg.Level)
	enc := encoder(cfg.Format)

	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.AddSync(w), level)}
	closeFn := func() error { return nil }

	if path := strings.TrimSpace(cfg.File); path != "" {
		if err := ensureDir(filepath.Dir(path)); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G302: log files are meant to be readable
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder(cfg.Format), zapcore.AddSync(f), level))
		closeFn = f.Close
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// ParseLevel maps a level name to a zap level; unknown names give info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoder(format string) zapcore.Encoder {
	if strings.EqualFold(format, "json") {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return zapcore.NewConsoleEncoder(cfg)
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
