package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vfs/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [roots...]",
		Short: "Watch hierarchies and keep the file system cache current",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return c.app.Watch(cmd.Context(), args, app.WatchOptions{
				Verbose: verbose,
			})
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Log watch statistics and change events")
	return cmd
}
