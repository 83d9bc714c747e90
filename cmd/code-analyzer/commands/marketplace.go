package commands

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/codelens/code-analyzer/internal/plugin"
	"github.com/codelens/code-analyzer/internal/skills"
	"github.com/codelens/code-analyzer/internal/ui"
)

var marketplaceCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Inspect or validate the marketplace manifest",
}

var marketplaceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the bundled marketplace listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := plugin.LoadMarketplace(plugin.FS())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title(m.Name))
		fmt.Fprintf(out, "  Owner: %s\n", m.Owner)
		fmt.Fprintln(out, "  Plugins:")
		for _, p := range m.Plugins {
			version := p.Version
			if version == "" {
				version = "unversioned"
			}
			fmt.Fprintf(out, "    %s (%s) — %s\n", p.Name, version, p.Description)
		}
		return nil
	},
}

var marketplaceValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a plugin bundle (default: the embedded one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := fs.FS(plugin.FS())
		source := "embedded bundle"
		if len(args) == 1 {
			fsys = os.DirFS(args[0])
			source = args[0]
		}

		if _, err := plugin.LoadManifest(fsys); err != nil {
			return err
		}
		if _, err := plugin.LoadMarketplace(fsys); err != nil {
			return err
		}
		loaded, _, errs := skills.Load(fsys)
		if len(errs) > 0 {
			return fmt.Errorf("invalid skill descriptors: %v", errs)
		}
		if len(loaded) == 0 {
			return fmt.Errorf("bundle contains no skills")
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(source+" is valid"))
		return nil
	},
}

func init() {
	marketplaceCmd.AddCommand(marketplaceShowCmd)
	marketplaceCmd.AddCommand(marketplaceValidateCmd)
	rootCmd.AddCommand(marketplaceCmd)
}
