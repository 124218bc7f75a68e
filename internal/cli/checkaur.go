package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pacctl/internal/ui"
	"pacctl/pkg/aur"
)

var checkAURCmd = &cobra.Command{
	Use:   "check-aur <package>",
	Short: "Check whether a package lives in the AUR",
	Long: `Report whether a package comes from the Arch User Repository
rather than the official sync databases. Packages found by pacman -Ssq
are official; anything else is checked against the AUR itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckAUR,
}

func runCheckAUR(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	if !cfg.AUR.Enabled {
		return fmt.Errorf("AUR support is disabled in the configuration")
	}

	if !client.IsAUR(ctx, name) {
		ui.InfoMsg("%s is not an AUR package", name)
		return nil
	}
	ui.SuccessMsg("%s is an AUR package", name)

	// Best effort: the RPC API has richer metadata than the search page.
	rpc := aur.NewClientWithOptions(cfg.AUR.SearchURL, cfg.AUR.RPCURL, 0)
	pkg, err := rpc.GetPackage(ctx, name)
	if err != nil {
		return nil
	}

	ui.Plain("  Version:     %s", pkg.Version)
	if pkg.Description != "" {
		ui.Plain("  Description: %s", pkg.Description)
	}
	if pkg.Maintainer != "" {
		ui.Plain("  Maintainer:  %s", pkg.Maintainer)
	}
	ui.Plain("  Votes:       %d", pkg.NumVotes)
	ui.Plain("  Updated:     %s", pkg.LastModifiedTime().Format("2006-01-02"))
	if len(pkg.Depends) > 0 {
		ui.Plain("  Depends:     %s", strings.Join(pkg.Depends, " "))
	}
	if pkg.IsOutOfDate() {
		ui.WarningMsg("%s is flagged out of date", name)
	}
	return nil
}
