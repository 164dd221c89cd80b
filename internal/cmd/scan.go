package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/balintxd/todoscan/internal/config"
	"github.com/balintxd/todoscan/internal/display"
	"github.com/balintxd/todoscan/internal/logger"
	"github.com/balintxd/todoscan/internal/report"
	"github.com/balintxd/todoscan/internal/scanner"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a directory tree for annotation markers",
		Long: `Scan a directory tree for annotation markers and print the results.

Configuration is loaded from todoscan.yaml at the scan root, with
todoscan.local.yaml layered on top; either file may be absent. CLI flags
take precedence over both.

Filters combine conjunctively when several are given. Unreadable files
and directories are reported to stderr and skipped; they never abort the
scan, and the exit code stays 0 regardless of findings.

Examples:
  todoscan scan .                          # Summary of the current tree
  todoscan scan src --all                  # Print every matched line
  todoscan scan . --user alice             # Only markers assigned to alice
  todoscan scan . --priority high          # Only high priority markers
  todoscan scan . --due 2024-03-31         # Only markers due by end of March
  todoscan scan . --quiet --all            # Lines only, no summary
  todoscan scan . -o report.json           # Also write a JSON report
  todoscan scan . -o report.md -f markdown # Markdown report`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().Bool("quiet", false, "Suppress the summary block")
	cmd.Flags().Bool("all", false, "Print every matched record")
	cmd.Flags().String("user", "", "Keep only records whose @resp tag contains this user")
	cmd.Flags().String("priority", "", "Keep only records with this priority (low, medium, high)")
	cmd.Flags().String("due", "", "Keep only records due on or before this date (YYYY-MM-DD)")
	cmd.Flags().String("config", "", "Path to the shared config file (default: todoscan.yaml at the scan root)")
	cmd.Flags().String("log-dir", "", "Directory for run log files (overrides config)")
	cmd.Flags().StringP("output", "o", "", "Write a report to this file")
	cmd.Flags().StringP("format", "f", "json", "Report format: json, markdown (or md)")

	return cmd
}

// runScan implements the scan command logic
func runScan(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := loadScanConfig(cmd, root)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logDir, _ := cmd.Flags().GetString("log-dir")
	if logDir != "" {
		cfg.LogDir = logDir
	}

	scanID := uuid.NewString()

	// Diagnostics go to stderr so record output stays pipeable
	var log logger.Logger = logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel, scanID)
		if err != nil {
			return fmt.Errorf("failed to open run log: %w", err)
		}
		defer fileLog.Close()
		log = logger.NewMultiLogger(log, fileLog)
	}

	start := time.Now()

	s, err := scanner.New(cfg, log)
	if err != nil {
		return err
	}

	records, err := s.Walk(root)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if user, _ := cmd.Flags().GetString("user"); user != "" {
		records = report.FilterByResponsible(records, user)
	}
	if level, _ := cmd.Flags().GetString("priority"); level != "" {
		records = report.FilterByPriority(records, level, log)
	}
	if due, _ := cmd.Flags().GetString("due"); due != "" {
		date, err := time.Parse("2006-01-02", due)
		if err != nil {
			return fmt.Errorf("invalid --due date %q (expected YYYY-MM-DD): %w", due, err)
		}
		records = report.FilterByDueBefore(records, date)
	}

	out := cmd.OutOrStdout()
	colorOutput := false
	if f, ok := out.(*os.File); ok {
		colorOutput = isatty.IsTerminal(f.Fd())
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		display.PrintRecords(out, records, colorOutput)
	}

	summary := report.Summarize(records, start, elapsed)

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		display.PrintSummary(out, summary, colorOutput)

		if cfg.TimeWarning > 0 && elapsed.Seconds() > float64(cfg.TimeWarning) {
			display.WarnSlowScan(elapsed.Seconds(), cfg.TimeWarning).Display(cmd.ErrOrStderr())
		}
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		formatName, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}

		rep := report.NewReport(scanID, root, records, summary)
		if err := rep.WriteFile(output, format); err != nil {
			return err
		}
		log.LogInfo(fmt.Sprintf("report written to %s", output))
	}

	return nil
}

// loadScanConfig loads the two-tier configuration for the scan root,
// honoring an explicit --config path for the shared tier.
func loadScanConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		return config.LoadFromDir(root)
	}

	// Explicit shared config must exist, unlike the well-known files
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	cfg, err := config.LoadConfig(configPath, config.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return config.LoadConfig(filepath.Join(root, config.LocalConfigName), cfg)
}
