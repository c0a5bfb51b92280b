package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the log encoding.
type Format string

const (
	// FormatConsole is the human-readable encoding (default).
	FormatConsole Format = "console"

	// FormatJSON emits one JSON object per entry.
	FormatJSON Format = "json"
)

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatConsole, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q (valid: console, json)", s)
	}
}

// Config describes how the diagnostic logger is built.
type Config struct {
	// Verbose lowers the level to debug.
	Verbose bool

	// Format is the entry encoding. Empty means FormatConsole.
	Format Format

	// OutputPaths are zap sink URLs. Empty means stderr.
	OutputPaths []string
}

// New builds a zap logger from cfg. The caller owns the logger and should
// call Sync before exiting.
func New(cfg Config) (*zap.Logger, error) {
	format := cfg.Format
	if format == "" {
		format = FormatConsole
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = string(format)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true
	zcfg.Sampling = nil
	if format == FormatConsole {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zcfg.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
