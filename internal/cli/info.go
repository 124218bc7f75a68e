package cli

import (
	"github.com/spf13/cobra"

	"pacctl/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:     "info <package>",
	Aliases: []string{"show"},
	Short:   "Show detailed package information",
	Long: `Show the full information block for a package. Installed packages
are queried from the local database (pacman -Qi), others from the sync
databases (pacman -Si).`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := client.Info(cmd.Context(), args[0])
	if err != nil {
		reportFailure(err)
		return err
	}
	ui.PrintInfo(info)
	return nil
}
