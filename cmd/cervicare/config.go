package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/cervicare/cervicare/pkg/config"
)

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads an explicit config file, or the nearest
// .cervicare/config.yaml above the working directory. A broken discovered
// file is reported and replaced by defaults; a broken explicit file is an
// error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		slog.Warn("getting working directory", "err", err)
		return config.DefaultConfig(), nil
	}
	cfgFile := config.FindConfigFile(cwd)
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		slog.Warn("failed to load config, using defaults", "path", cfgFile, "err", err)
		return config.DefaultConfig(), nil
	}
	slog.Debug("loaded config", "path", cfgFile)
	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
