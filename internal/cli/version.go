package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := app.versionInfo
			if info.Version == "" {
				info.Version = "dev"
			}
			if info.Commit == "" {
				info.Commit = "unknown"
			}
			if info.Date == "" {
				info.Date = "unknown"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "consolidate version %s\n", info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", info.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", info.Date)
			return nil
		},
	}
}
