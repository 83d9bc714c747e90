package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codelens/code-analyzer/internal/analysis"
	"github.com/codelens/code-analyzer/internal/config"
	"github.com/codelens/code-analyzer/internal/invoker"
	"github.com/codelens/code-analyzer/internal/report"
	"github.com/codelens/code-analyzer/internal/tools"
	"github.com/codelens/code-analyzer/internal/ui"
)

var (
	flagScenario    string
	flagTarget      string
	flagContext     string
	flagTool        string
	flagTimeout     time.Duration
	flagMaxAttempts int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run or preview a codebase analysis",
}

var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Run one analysis and print the full tool output",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd, false)
	},
}

var executeOptimizedCmd = &cobra.Command{
	Use:   "execute-optimized",
	Short: "Run one analysis and print only the summary plus report path",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd, true)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the command line an analysis would execute, without running it",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, toolID := buildRequest()
		line, err := invoker.CommandLine(req, toolID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	},
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&flagScenario, "scenario", "", "Analysis scenario (patterns, architecture, quality, review, audit, features, documentation)")
	analyzeCmd.PersistentFlags().StringVar(&flagTarget, "target", "", "Analysis target, e.g. 'authentication'")
	analyzeCmd.PersistentFlags().StringVar(&flagContext, "context", "", "Additional context appended to the analysis prompt")
	analyzeCmd.PersistentFlags().StringVar(&flagTool, "tool", "", "Override the configured tool for this run (gemini, qwen)")
	analyzeCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", invoker.DefaultTimeout, "Per-attempt timeout")
	analyzeCmd.PersistentFlags().IntVar(&flagMaxAttempts, "max-attempts", invoker.DefaultMaxAttempts, "Total attempts including the first")

	analyzeCmd.AddCommand(executeCmd)
	analyzeCmd.AddCommand(executeOptimizedCmd)
	analyzeCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func buildRequest() (analysis.Request, tools.ID) {
	req := analysis.Request{
		Scenario: analysis.Scenario(flagScenario),
		Target:   flagTarget,
		Context:  flagContext,
	}
	toolID := config.PreferredTool()
	if flagTool != "" {
		toolID = tools.ID(flagTool)
	}
	return req, toolID
}

func runAnalysis(cmd *cobra.Command, optimized bool) error {
	req, toolID := buildRequest()

	out := cmd.OutOrStdout()
	fmt.Fprintln(cmd.ErrOrStderr(), ui.Dim(fmt.Sprintf("Running %s analysis with %s (this may take several minutes)...", req.Scenario, toolID)))

	iv := invoker.New(nil, invoker.Options{
		Timeout:     flagTimeout,
		MaxAttempts: flagMaxAttempts,
	})
	res, err := iv.Run(cmd.Context(), req, toolID)
	if err != nil {
		return err
	}

	reportPath := res.ReportPath
	if optimized && reportPath == "" {
		// The tool printed no report marker: persist the transcript so the
		// caller still gets a full-output file.
		path, werr := report.Write("", res.Command, res.Stdout, res.Stderr)
		if werr != nil {
			return werr
		}
		reportPath = path
	}

	fmt.Fprintln(out, ui.Success(fmt.Sprintf("Analysis completed after %d attempt(s) in %s", res.Attempts, res.Elapsed.Round(time.Second))))
	fmt.Fprintln(out)

	if optimized {
		fmt.Fprintln(out, res.Summary)
	} else {
		fmt.Fprintln(out, res.Stdout)
	}

	if reportPath != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Report:", reportPath)
	}
	return nil
}
