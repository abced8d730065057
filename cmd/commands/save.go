package commands

import (
	"github.com/spf13/cobra"

	"github.com/muxcfg/muxcfg/internal/cli"
	"github.com/muxcfg/muxcfg/pkg/store"
)

// NewSaveCommand creates the save command
func NewSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Save the live tmux configuration as a new snapshot",
		Long: `Save a copy of the live tmux configuration under a new name. Saving
over an existing snapshot is refused; use 'muxcfg update' to overwrite.

Examples:
  muxcfg save dev
  muxcfg save prod.conf`,
		Args: cobra.ExactArgs(1),
		RunE: runSave,
	}
}

func runSave(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Save(args[0]); err != nil {
		return err
	}

	cli.PrintSuccess("Saved '%s'", store.Normalize(args[0]))
	return nil
}
