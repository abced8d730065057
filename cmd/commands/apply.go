package commands

import (
	"github.com/spf13/cobra"

	"github.com/muxcfg/muxcfg/internal/cli"
	"github.com/muxcfg/muxcfg/pkg/store"
)

// NewApplyCommand creates the apply command
func NewApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name>",
		Short: "Make a snapshot the live tmux configuration",
		Long: `Copy a saved snapshot over the live tmux configuration and ask a
running tmux server to re-source it. The reload is best-effort: if tmux is
not running, the copy still succeeds.

Examples:
  muxcfg apply dev
  muxcfg apply dev.conf`,
		Args: cobra.ExactArgs(1),
		RunE: runApply,
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Apply(args[0]); err != nil {
		return err
	}

	cli.PrintSuccess("Applied '%s'", store.Normalize(args[0]))
	return nil
}
