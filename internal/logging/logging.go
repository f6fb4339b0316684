// Package logging builds the zap logger used by the CLI. Output goes to
// stderr, or to a size-rotated file through lumberjack when a file is set.
package logging

import (
	"fmt"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/orbitgraph/config"
)

// New returns a logger for cfg and a cleanup func that flushes it and closes
// any log file. cleanup is never nil.
func New(cfg config.Log) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(cfg.Level); err != nil {
			return nil, func() {}, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
	}

	if cfg.File == "" {
		zcfg := zap.NewProductionConfig()
		if cfg.Development {
			zcfg = zap.NewDevelopmentConfig()
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := zcfg.Build()
		if err != nil {
			return nil, func() {}, fmt.Errorf("logging: build: %w", err)
		}
		return logger, func() { _ = logger.Sync() }, nil
	}

	rotator := &lumberjack.Logger{
		Filename: cfg.File,
		MaxSize:  cfg.MaxSizeMB, // megabytes
		MaxAge:   cfg.MaxAgeDays,
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)
	logger := zap.New(core, zap.AddCaller())

	return logger, func() {
		_ = logger.Sync()
		_ = rotator.Close()
	}, nil
}
