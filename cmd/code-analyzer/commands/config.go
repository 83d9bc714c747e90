package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens/code-analyzer/internal/config"
	"github.com/codelens/code-analyzer/internal/tools"
	"github.com/codelens/code-analyzer/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the persisted tool selection",
}

var setToolCmd = &cobra.Command{
	Use:   "set-tool <tool-id>",
	Short: "Persist which external analysis CLI to use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := tools.ID(args[0])
		if err := config.SetPreferredTool(id); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Preferred tool set to %s", id)))

		st := config.CurrentStatus()
		if st.Effective == "" {
			fmt.Fprintln(out, ui.Warn(fmt.Sprintf("Note: the %s binary was not found on PATH", id)))
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current tool selection and availability",
	Run: func(cmd *cobra.Command, args []string) {
		st := config.CurrentStatus()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ui.Title("Current Configuration"))
		fmt.Fprintf(out, "  Preferred tool: %s\n", st.Preferred)
		fmt.Fprintln(out, "  Available tools:")
		for _, a := range st.Tools {
			cmdPath := a.Command
			if cmdPath == "" {
				cmdPath = "not found"
			}
			fmt.Fprintf(out, "    %s %s — %s\n", ui.Glyph(a.Available), a.ID, cmdPath)
		}
		if st.Effective != "" {
			fmt.Fprintf(out, "  Effective tool: %s\n", st.Effective)
		} else {
			fmt.Fprintf(out, "  Effective tool: %s\n", ui.Dim("none (preferred tool not installed)"))
		}
	},
}

func init() {
	configCmd.AddCommand(setToolCmd)
	configCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}
