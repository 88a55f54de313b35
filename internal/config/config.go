package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "dtpick"
	DbName     = "dtpick.db"
	ConfigName = "config.yaml"
)

// DataDir returns the path to the dtpick data directory (~/.dtpick/)
// Creates the directory if it doesn't exist
// Can be overridden with DTPICK_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	if dataDir := os.Getenv("DTPICK_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// ConfigPath returns the path to the picker config file (~/.dtpick/config.yaml)
// DTPICK_CONFIG points at a different file.
func ConfigPath() (string, error) {
	if path := os.Getenv("DTPICK_CONFIG"); path != "" {
		return path, nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, ConfigName), nil
}

// DatabasePath returns the path to the SQLite history database (~/.dtpick/dtpick.db)
func DatabasePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, DbName), nil
}

// LogDir returns the path to the log directory (~/.dtpick/logs/)
// Creates the directory if it doesn't exist
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}

	return logDir, nil
}
