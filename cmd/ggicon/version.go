package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggicon"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ggicon %s (%s)\n", ggicon.Version, version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
			return nil
		},
	}
}
