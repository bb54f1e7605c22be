package app

import (
	"errors"
	"os"
	"path/filepath"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl file or directory
	DataDir      string // base directory for experimental reference files
	ReportPath   string // JSON report artifact; empty skips the file
	ArchivePath  string // SQLite run archive; empty disables archiving

	LogFormat string
	LogLevel  string
	LogFile   string // optional JSON copy of the log stream
}

// NewConfig validates cfg and fills derived defaults: an unset DataDir
// becomes the manifest's own directory.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}

	if cfg.DataDir == "" {
		cfg.DataDir = manifestDir(cfg.ManifestPath)
	}

	return &cfg, nil
}

// manifestDir is the directory the manifest lives in; a directory manifest
// is its own base.
func manifestDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
