package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pacctl/internal/history"
	"pacctl/internal/ui"
)

var installAlways bool

var installCmd = &cobra.Command{
	Use:   "install [packages...]",
	Short: "Install one or more packages",
	Long: `Install packages with pacman -S. Packages that are already up to
date are skipped unless --reinstall is given.

Examples:
  pacctl install vim ripgrep
  pacctl install -y neovim       # no confirmation prompt
  pacctl install --reinstall vim # reinstall even when current`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installAlways, "reinstall", false, "reinstall packages that are already up to date")
}

func runInstall(cmd *cobra.Command, args []string) error {
	deps, err := client.NeedsFor(cmd.Context(), args)
	if err == nil && len(deps) > 0 {
		ui.InfoMsg("Packages to install: %s", strings.Join(deps, ", "))
	}

	if !confirm(fmt.Sprintf("Install %s?", strings.Join(args, ", "))) {
		return ErrAborted
	}

	entry := history.NewEntry(history.OpInstall, client.Bin(), args)
	err = ui.WithSpinner("Installing...", func() error {
		return client.Install(cmd.Context(), args, !installAlways)
	})
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		reportFailure(err)
		return err
	}

	entry.MarkSuccess()
	recordHistory(entry)
	ui.SuccessMsg("Installed %s", strings.Join(args, ", "))
	return nil
}
