package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MikeBiancalana/dtpick/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "dtpick.log"

// Config controls where and how the process logs.
type Config struct {
	Level   string // DEBUG, INFO, WARN, ERROR
	Format  string // text or json
	File    string // empty: stderr, or the default log file in TUI mode
	TUIMode bool   // the alt screen owns the terminal, so logs must go to a file
}

var (
	mu        sync.RWMutex
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	rotator   *lumberjack.Logger
)

func init() {
	Initialize()
}

// Initialize configures the logger from the environment.
func Initialize() {
	if err := InitializeWithConfig(ConfigFromEnv(false)); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
	}
}

// ConfigFromEnv reads LOG_LEVEL, DTPICK_DEBUG, LOG_FORMAT and LOG_FILE.
func ConfigFromEnv(tui bool) Config {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		debug := os.Getenv("DTPICK_DEBUG")
		if debug == "1" || debug == "true" {
			levelStr = "DEBUG"
		} else {
			levelStr = "INFO"
		}
	}

	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "text"
	}

	return Config{
		Level:   levelStr,
		Format:  format,
		File:    os.Getenv("LOG_FILE"),
		TUIMode: tui,
	}
}

// InitializeWithConfig (re)builds the global logger. It may be called again
// at any time; the previous log file is closed.
func InitializeWithConfig(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level := parseLevel(cfg.Level)
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "text"
	}

	file := cfg.File
	if file == "" && cfg.TUIMode {
		logDir, err := config.LogDir()
		if err != nil {
			return fmt.Errorf("TUI mode requires file-based logging: %w", err)
		}
		file = filepath.Join(logDir, logFileName)
	}

	var out io.Writer = os.Stderr
	var next *lumberjack.Logger
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			if cfg.TUIMode {
				return fmt.Errorf("TUI mode requires file-based logging: %w", err)
			}
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		next = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = next
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if rotator != nil {
		rotator.Close()
	}
	rotator = next
	logger = slog.New(handler)
	logLevel = level
	logFormat = format
	logFile = file
	tuiMode = cfg.TUIMode
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes the log file. Safe to call more than once.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func GetLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func GetLevel() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func GetFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFormat
}

func GetLogFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFile
}

func IsTUIMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return tuiMode
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
