package cli

import (
	"github.com/spf13/cobra"

	"pacctl/internal/ui"
)

var (
	listInstalled  bool
	listAvailable  bool
	listUpgradable bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List packages",
	Long: `List packages known to pacman. By default every package from the
sync databases is shown, annotated with its install and upgrade state.
Use --installed, --available or --upgradable to narrow the view.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listInstalled, "installed", "i", false, "only installed packages")
	listCmd.Flags().BoolVarP(&listAvailable, "available", "a", false, "only packages from the sync databases")
	listCmd.Flags().BoolVarP(&listUpgradable, "upgradable", "u", false, "only packages with a pending upgrade")
	listCmd.MarkFlagsMutuallyExclusive("installed", "available", "upgradable")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	switch {
	case listInstalled:
		pkgs, err := client.Installed(ctx)
		if err != nil {
			reportFailure(err)
			return err
		}
		ui.PrintPackages(pkgs)
	case listUpgradable:
		pkgs, err := client.Installed(ctx)
		if err != nil {
			reportFailure(err)
			return err
		}
		ui.PrintUpgradable(pkgs)
	case listAvailable:
		pkgs, err := client.Available(ctx)
		if err != nil {
			reportFailure(err)
			return err
		}
		ui.PrintPackages(pkgs)
	default:
		pkgs, err := client.All(ctx)
		if err != nil {
			reportFailure(err)
			return err
		}
		ui.PrintPackages(pkgs)
	}
	return nil
}
