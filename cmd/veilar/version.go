package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veilar-ui/veilar/pkg/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "veilar %s\ncommit: %s\nbuilt: %s\nsheet format: %s\n", version, commit, date, config.SupportedMajor)
			return nil
		},
	}
}
