// Package scanner implements the scan pipeline: recursive directory
// traversal with exclusion rules, per-line pattern matching, and record
// construction with annotation extraction.
//
// The pipeline is best-effort: an unreadable directory or file is logged
// and contributes zero records, never aborting the rest of the walk.
package scanner

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/balintxd/todoscan/internal/annotation"
	"github.com/balintxd/todoscan/internal/config"
	"github.com/balintxd/todoscan/internal/logger"
	"github.com/balintxd/todoscan/internal/models"
)

// Scanner holds the compiled pattern and configuration for one scan
// invocation. Configuration is threaded in explicitly, never read from
// process-wide state, so scanners are safe to use concurrently.
type Scanner struct {
	cfg     *config.Config
	pattern *regexp.Regexp
	enc     encoding.Encoding
	log     logger.Logger
}

// New creates a Scanner from the given configuration. The pattern regex
// is compiled once up front; an invalid pattern or unknown encoding name
// is a construction error, not a per-file one.
func New(cfg *config.Config, log logger.Logger) (*Scanner, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	pattern, err := regexp.Compile(cfg.Pattern.Regex)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	var enc encoding.Encoding
	if cfg.Encoding != "" {
		enc, err = ianaindex.IANA.Encoding(cfg.Encoding)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unknown encoding %q", cfg.Encoding)
		}
	}

	return &Scanner{
		cfg:     cfg,
		pattern: pattern,
		enc:     enc,
		log:     log,
	}, nil
}

// Walk recursively scans the directory tree rooted at rootPath and
// returns all records found. Directories whose base name is listed in
// the directory exceptions are skipped entirely, at any depth. Symlinks
// and other non-regular entries are never followed or scanned.
//
// Records preserve line order within a single file; no global ordering
// across directories is guaranteed. Only an unusable root is an error;
// failures below the root are logged and that subtree yields nothing.
func (s *Scanner) Walk(rootPath string) ([]models.Record, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", rootPath)
	}

	records := make([]models.Record, 0)

	walkErr := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.LogError(fmt.Sprintf("error accessing %s: %v", path, err))
			return nil // Continue walking
		}

		if d.IsDir() {
			if path != rootPath && s.cfg.IsDirectoryExcepted(d.Name()) {
				s.log.LogDebug(fmt.Sprintf("skipping excluded directory %s", path))
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks, devices etc. are not scanned; in particular symlinked
		// directories are never followed, so traversal cannot cycle.
		if !d.Type().IsRegular() {
			s.log.LogDebug(fmt.Sprintf("skipping non-regular entry %s", path))
			return nil
		}

		if s.cfg.IsFileExcepted(d.Name()) || s.cfg.IsFileExcepted(path) {
			s.log.LogDebug(fmt.Sprintf("skipping excluded file %s", path))
			return nil
		}

		records = append(records, s.ScanFile(path)...)
		return nil
	})
	if walkErr != nil {
		// The callback never returns an error, so this is unreachable in
		// practice; report it the same way as a subtree failure.
		s.log.LogError(fmt.Sprintf("walk aborted: %v", walkErr))
	}

	return records, nil
}

// ScanFile reads one file and returns a record for every line that
// matches the configured pattern. A read or decode failure is logged and
// yields an empty result, never an error to the caller.
func (s *Scanner) ScanFile(path string) []models.Record {
	content, err := s.readFile(path)
	if err != nil {
		s.log.LogError(fmt.Sprintf("failed to read %s: %v", path, err))
		return nil
	}

	records := make([]models.Record, 0)

	// Split on bare newlines only. Trailing carriage returns stay on the
	// line for length and pattern checks; trimming happens at storage.
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		// The limit is in characters, not bytes
		if utf8.RuneCountInString(line) > s.cfg.Pattern.Limit {
			continue
		}

		candidate := line
		if !s.cfg.Pattern.CaseSensitive {
			candidate = strings.ToLower(line)
		}
		if !s.pattern.MatchString(candidate) {
			continue
		}

		records = append(records, s.newRecord(path, i+1, line))
	}

	return records
}

// newRecord builds a Record from a matched line, running the three
// annotation extractions and logging any extraction warnings.
func (s *Scanner) newRecord(path string, lineNumber int, line string) models.Record {
	trimmed := strings.TrimSpace(line)

	tags, warnings := annotation.Extract(trimmed)
	for _, warning := range warnings {
		s.log.LogWarn(fmt.Sprintf("%s [%d]: %v", path, lineNumber, warning))
	}

	return models.Record{
		Path:         path,
		Line:         lineNumber,
		Content:      trimmed,
		Priority:     tags.Priority,
		DueDate:      tags.DueDate,
		Responsibles: tags.Responsibles,
	}
}

// readFile reads the whole file and decodes it through the configured
// encoding.
func (s *Scanner) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if s.enc == nil {
		return string(data), nil
	}

	decoded, err := io.ReadAll(s.enc.NewDecoder().Reader(bytes.NewReader(data)))
	if err != nil {
		return "", fmt.Errorf("failed to decode as %s: %w", s.cfg.Encoding, err)
	}
	return string(decoded), nil
}
