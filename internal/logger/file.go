package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileLogger logs scan diagnostics to a timestamped run-log file and
// maintains a latest.log symlink pointing to the most recent run.
// Each run log is stamped with a unique scan ID in its header.
// It is thread-safe and implements the Logger interface.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	scanID   string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing into logDir, creating the
// directory if needed. The run log file is named scan-YYYYMMDD-HHMMSS.log
// and a latest.log symlink is created or updated to point at it.
// If scanID is empty a fresh one is generated.
func NewFileLogger(logDir string, logLevel string, scanID string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("scan-%s.log", ts))

	runLog, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if scanID == "" {
		scanID = uuid.NewString()
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   runLog,
		runFile:  runFile,
		scanID:   scanID,
		logLevel: normalizeLogLevel(logLevel),
	}

	// Header line identifying this run
	fmt.Fprintf(runLog, "[%s] [INFO] scan %s started\n", timestamp(), scanID)

	// Update latest.log symlink; failure is non-fatal (e.g. filesystems
	// without symlink support)
	latest := filepath.Join(logDir, "latest.log")
	os.Remove(latest)
	_ = os.Symlink(filepath.Base(runFile), latest)

	return fl, nil
}

// ScanID returns the unique identifier of this run.
func (fl *FileLogger) ScanID() string {
	return fl.scanID
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// LogTrace logs a trace-level message to the run log.
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message to the run log.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message to the run log.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message to the run log.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message to the run log.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if logLevelToInt(strings.ToLower(level)) < logLevelToInt(fl.logLevel) {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog == nil {
		return
	}
	fmt.Fprintf(fl.runLog, "[%s] [%s] %s\n", timestamp(), level, message)
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog == nil {
		return nil
	}
	err := fl.runLog.Close()
	fl.runLog = nil
	return err
}

// MultiLogger fans every message out to multiple loggers, typically the
// console logger plus a run-log file logger.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger over the given loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// LogTrace forwards to every logger.
func (ml *MultiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards to every logger.
func (ml *MultiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to every logger.
func (ml *MultiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to every logger.
func (ml *MultiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogError forwards to every logger.
func (ml *MultiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}
