package cli

import (
	"github.com/spf13/cobra"

	"pacctl/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse packages interactively",
	Long: `Open a full-screen package browser. Type to filter by name, use
the arrow keys to scroll, press q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(client)
	},
}
