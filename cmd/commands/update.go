package commands

import (
	"github.com/spf13/cobra"

	"github.com/muxcfg/muxcfg/internal/cli"
	"github.com/muxcfg/muxcfg/pkg/store"
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <name>",
		Short: "Overwrite an existing snapshot with the live configuration",
		Long: `Replace an existing snapshot's contents with the live tmux
configuration. Updating a name that was never saved is an error.

Examples:
  muxcfg update dev`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
}

func runUpdate(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Update(args[0]); err != nil {
		return err
	}

	cli.PrintSuccess("Updated '%s'", store.Normalize(args[0]))
	return nil
}
