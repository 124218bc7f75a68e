package cli

import (
	"github.com/spf13/cobra"

	"pacctl/internal/history"
	"pacctl/internal/ui"
)

var refreshCmd = &cobra.Command{
	Use:     "refresh",
	Aliases: []string{"update"},
	Short:   "Refresh the package databases",
	Long: `Sync the local package databases with pacman -Sy. This downloads
the latest package information but does not install or upgrade anything.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	entry := history.NewEntry(history.OpRefresh, client.Bin(), nil)

	err := ui.WithSpinner("Refreshing package databases...", func() error {
		return client.Refresh(cmd.Context())
	})
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		reportFailure(err)
		return err
	}

	entry.MarkSuccess()
	recordHistory(entry)
	ui.SuccessMsg("Package databases refreshed")
	return nil
}
