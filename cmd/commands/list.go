package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muxcfg/muxcfg/internal/cli"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		Long: `List the names of all saved tmux configuration snapshots.

Examples:
  muxcfg list`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	names, err := st.List()
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	if len(names) == 0 {
		cli.PrintInfo("No snapshots saved yet. Use 'muxcfg save <name>' to create one.")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}
