// Package logging builds the structured logger shared by the cafe demo.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels lists the accepted log level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps one of Levels to its zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	for _, l := range Levels {
		if l == name {
			return zapcore.ParseLevel(name)
		}
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q, want one of %v", name, Levels)
}

// NewLogger returns a JSON logger on stderr tagged with service and env.
// Stdout is reserved for the demonstration output.
func NewLogger(service, env, level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"service": service, "env": env},
	}
	return cfg.Build()
}
