package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pacctl/internal/history"
	"pacctl/internal/ui"
)

var removePurge bool

var removeCmd = &cobra.Command{
	Use:     "remove [packages...]",
	Aliases: []string{"uninstall"},
	Short:   "Remove one or more packages",
	Long: `Remove packages and their dependent cascade with pacman -Rc.
With --purge, configuration files are removed too (-Rcn).

Examples:
  pacctl remove vim
  pacctl remove --purge nginx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removePurge, "purge", false, "also remove configuration files")
}

func runRemove(cmd *cobra.Command, args []string) error {
	// Show what gets dragged along before asking.
	dependents, err := client.DependsFor(cmd.Context(), args)
	if err == nil && len(dependents) > 0 {
		ui.WarningMsg("Removal cascade: %s", strings.Join(dependents, ", "))
	}

	if !confirm(fmt.Sprintf("Remove %s?", strings.Join(args, ", "))) {
		return ErrAborted
	}

	entry := history.NewEntry(history.OpRemove, client.Bin(), args)
	err = ui.WithSpinner("Removing...", func() error {
		return client.Remove(cmd.Context(), args, removePurge)
	})
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		reportFailure(err)
		return err
	}

	entry.MarkSuccess()
	recordHistory(entry)
	ui.SuccessMsg("Removed %s", strings.Join(args, ", "))
	return nil
}
