package commands

import (
	"github.com/spf13/cobra"

	"github.com/muxcfg/muxcfg/internal/cli"
	"github.com/muxcfg/muxcfg/pkg/store"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a snapshot",
		Long: `Permanently delete a snapshot. The live tmux configuration is not
touched.

Examples:
  muxcfg delete old-setup`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	if err := st.Delete(args[0]); err != nil {
		return err
	}

	cli.PrintSuccess("Deleted '%s'", store.Normalize(args[0]))
	return nil
}
