package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muxcfg/muxcfg/cmd/commands"
	"github.com/muxcfg/muxcfg/internal/cli"
	"github.com/muxcfg/muxcfg/internal/log"
	"github.com/muxcfg/muxcfg/pkg/config"
	"github.com/muxcfg/muxcfg/pkg/store"
	"github.com/muxcfg/muxcfg/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "muxcfg",
	Short: "Manage named snapshots of your tmux configuration",
	Long: `muxcfg saves, applies, updates, and deletes named snapshots of your
tmux configuration. Run without a subcommand to browse snapshots
interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if logPath, err := config.LogPath(); err == nil {
			// Logging is optional; the TUI works fine without it.
			_ = log.Init(logPath, cfg.Debug)
		}

		st := store.NewFS(cfg.SnapshotsDir, cfg.LiveConfig, cfg.TmuxBin)
		p := tea.NewProgram(tui.New(st), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Long:  `Creates the muxcfg config directory with a settings.yaml you can edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.WriteDefault()
		if err != nil {
			return err
		}
		cli.PrintSuccess("Settings at %s", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of muxcfg",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("muxcfg version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable symbols and colors in output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewSaveCommand())
	rootCmd.AddCommand(commands.NewUpdateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
