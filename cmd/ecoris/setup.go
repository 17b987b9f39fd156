package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecoris/internal/config"
)

// loadGameConfig loads the configuration and applies the difficulty preset.
func loadGameConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, preset, nil
}

// newLogger builds the logger for a command. When --log-file is set logs go
// there; otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
