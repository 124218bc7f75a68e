package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pacctl/internal/history"
	"pacctl/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent package operations",
	Long:  `Show the most recent install, remove, refresh and upgrade operations recorded by pacctl, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(entries) == 0 {
		ui.InfoMsg("No recorded operations")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tOPERATION\tPACKAGES\tRESULT")
	for _, e := range entries {
		result := ui.SymbolSuccess
		if !e.Success {
			result = ui.SymbolError
			if e.Error != "" {
				result += " " + e.Error
			}
		}
		packages := strings.Join(e.Packages, " ")
		if packages == "" {
			packages = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.Operation, packages, result)
	}
	return w.Flush()
}
