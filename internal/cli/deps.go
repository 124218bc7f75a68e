package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pacctl/internal/ui"
)

var depsReverse bool

var depsCmd = &cobra.Command{
	Use:   "deps <packages...>",
	Short: "Show dependency information",
	Long: `Show what installing the named packages would pull in. With
--reverse, show instead which installed packages would be removed along
with them (pacman -Rpc).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().BoolVarP(&depsReverse, "reverse", "r", false, "show packages removed alongside the targets")
}

func runDeps(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		names []string
		err   error
	)
	if depsReverse {
		names, err = client.DependsFor(ctx, args)
	} else {
		names, err = client.NeedsFor(ctx, args)
	}
	if err != nil {
		reportFailure(err)
		return err
	}

	if len(names) == 0 {
		ui.InfoMsg("No packages")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
