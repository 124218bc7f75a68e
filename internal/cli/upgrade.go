package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pacctl/internal/history"
	"pacctl/internal/ui"
)

var upgradeRefresh bool

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [packages...]",
	Short: "Upgrade packages",
	Long: `Upgrade the named packages, or perform a full system upgrade when
no packages are given. A full upgrade runs pacman -Su; use --refresh to
sync the databases first.`,
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().BoolVarP(&upgradeRefresh, "refresh", "r", false, "refresh package databases before upgrading")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if upgradeRefresh {
		if err := ui.WithSpinner("Refreshing package databases...", func() error {
			return client.Refresh(ctx)
		}); err != nil {
			reportFailure(err)
			return err
		}
	}

	if len(args) == 0 {
		rows, err := client.Installed(ctx)
		if err == nil {
			pending := 0
			for _, p := range rows {
				if p.HasUpgrade() {
					pending++
				}
			}
			if pending == 0 {
				ui.InfoMsg("System is up to date")
				return nil
			}
			ui.InfoMsg("%d package(s) can be upgraded", pending)
		}
		if !confirm("Proceed with full system upgrade?") {
			return ErrAborted
		}
	} else {
		if !confirm(fmt.Sprintf("Upgrade %d package(s)?", len(args))) {
			return ErrAborted
		}
	}

	entry := history.NewEntry(history.OpUpgrade, client.Bin(), args)

	err := ui.WithSpinner("Upgrading...", func() error {
		return client.Upgrade(ctx, args)
	})
	if err != nil {
		entry.MarkFailed(err)
		recordHistory(entry)
		reportFailure(err)
		return err
	}

	entry.MarkSuccess()
	recordHistory(entry)
	if len(args) == 0 {
		ui.SuccessMsg("System upgraded")
	} else {
		ui.SuccessMsg("Upgraded %d package(s)", len(args))
	}
	return nil
}
