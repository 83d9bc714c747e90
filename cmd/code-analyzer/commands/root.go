// Package commands wires the code-analyzer CLI: analysis execution, tool
// configuration, and plugin bundle management.
package commands

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "code-analyzer",
	Short: "Codebase analysis through external AI CLI tools",
	Long: `code-analyzer wraps external AI analysis CLIs (Gemini CLI or Qwen Code)
to analyze a codebase and produce a short summary plus a full report file.
The active tool is persisted configuration; analysis runs retry transient
failures with a generous per-attempt timeout.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging (command lines, attempt outcomes)")
}

// Execute runs the root command with the given context. Cancellation
// terminates any running external tool.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
