package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens/code-analyzer/internal/plugin"
	"github.com/codelens/code-analyzer/internal/skills"
	"github.com/codelens/code-analyzer/internal/ui"
)

var flagForce bool

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List, show, or install the bundled skill descriptors",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled skills and slash commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, cmds, errs := skills.Load(plugin.FS())
		for _, err := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: "+err.Error()))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title("Skills"))
		for _, s := range loaded {
			fmt.Fprintf(out, "  %s — %s\n", s.Name, s.Description)
		}
		fmt.Fprintln(out, ui.Title("Commands"))
		for _, c := range cmds {
			hint := ""
			if c.ArgumentHint != "" {
				hint = " " + c.ArgumentHint
			}
			fmt.Fprintf(out, "  /%s:%s%s — %s\n", plugin.Name, c.Name, hint, c.Description)
		}
		return nil
	},
}

var skillsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a bundled skill's instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, _, _ := skills.Load(plugin.FS())
		s, ok := skills.Find(loaded, args[0])
		if !ok {
			return fmt.Errorf("unknown skill %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title(s.Name))
		fmt.Fprintln(out, ui.Dim(s.Description))
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.RenderMarkdown(s.Content))
		return nil
	},
}

var skillsInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the plugin bundle into ~/.claude/plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := plugin.Install("", flagForce)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Installed plugin bundle to "+dest))
		return nil
	},
}

func init() {
	skillsInstallCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing installation")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.AddCommand(skillsInstallCmd)
	rootCmd.AddCommand(skillsCmd)
}
