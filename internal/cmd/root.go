package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for todoscan
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todoscan",
		Short: "Annotation marker scanner for directory trees",
		Long: `Todoscan walks a directory tree looking for annotation markers
(conventionally "TODO") and extracts structured metadata embedded in each
marker line: priority (@prio=high), due date (@due=2024-03-15) and
responsible users (@resp=alice,bob).

The resulting records can be filtered by user, priority and due-date
window, and are summarized per priority and per due-date bucket.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewScanCommand())

	return cmd
}
