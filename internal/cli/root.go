// Package cli implements the pacctl command-line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"pacctl/internal/config"
	"pacctl/internal/executor"
	"pacctl/internal/history"
	"pacctl/internal/ui"
	"pacctl/pkg/aur"
	"pacctl/pkg/pacman"
)

var (
	// Global flags
	cfgFile     string
	binOverride string
	yes         bool
	verbose     bool
	noColor     bool
	noSudo      bool

	// Global state
	cfg    *config.Config
	client *pacman.Client
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pacctl",
	Short: "Typed control and query layer over pacman",
	Long: `pacctl drives the pacman command-line tool and turns its output
into structured package records: installed and available inventories,
upgrade status, metadata blocks and dependency listings.

Pointing it at an AUR helper with a pacman-compatible interface
(yay, paru) via --bin or the config file works as well.

Examples:
  pacctl list --upgradable       # Installed packages with pending upgrades
  pacctl install vim ripgrep     # Install packages
  pacctl info vim                # Show the package metadata block
  pacctl check-aur yay-bin       # Is this an AUR package?`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&binOverride, "bin", "", "pacman binary or compatible AUR helper")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noSudo, "no-sudo", false, "never elevate through sudo")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(checkAURCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(browseCmd)
}

// Execute runs the root command. Pacman failures are reported by the
// commands themselves; everything else is printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAborted) {
			ui.WarningMsg("Aborted")
		} else if _, ok := pacman.AsExecError(err); !ok {
			ui.ErrorMsg("%v", err)
		}
	}
	return err
}

// initializeApp loads configuration and wires up the pacman client.
func initializeApp() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if yes {
		cfg.General.AutoConfirm = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if noSudo {
		cfg.Pacman.Sudo = false
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	bin := cfg.Pacman.Binary
	if binOverride != "" {
		bin = binOverride
	}
	if bin == "" {
		client, err = pacman.New()
	} else {
		client, err = pacman.NewWithBinary(bin)
	}
	if err != nil {
		return err
	}

	client.SetRunner(executor.New(cfg.Pacman.Sudo, cfg.Output.Verbose))
	client.SetAUR(aur.NewClientWithOptions(cfg.AUR.SearchURL, cfg.AUR.RPCURL, 0))
	return nil
}

// confirm asks for confirmation unless auto-confirm is active.
func confirm(prompt string) bool {
	if cfg.General.AutoConfirm {
		return true
	}
	ok, err := ui.Confirm(prompt, true)
	return err == nil && ok
}

// recordHistory stores a history entry, best effort.
func recordHistory(entry *history.Entry) {
	if !cfg.General.History {
		return
	}
	store, err := history.Open()
	if err != nil {
		return
	}
	defer store.Close()
	_ = store.Record(entry) //nolint:errcheck
}

// reportFailure prints the error plus any recognized pacman diagnostic.
func reportFailure(err error) {
	ui.ErrorMsg("%v", err)

	execErr, ok := pacman.AsExecError(err)
	if !ok {
		return
	}
	detail := pacman.Classify(execErr.Stderr)
	if detail == nil {
		return
	}
	if len(detail.Packages) > 0 {
		ui.MutedMsg("  affected: %v", detail.Packages)
	}
	if detail.Suggestion != "" {
		ui.InfoMsg("%s", detail.Suggestion)
	}
}
