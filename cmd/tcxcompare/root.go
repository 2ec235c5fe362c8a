package main

import (
	"tcx-compare/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "tcxcompare",
		Short:        "Generate and compare dual-device heart-rate recordings",
		SilenceUsage: true,
	}
	root.AddCommand(newSynthCmd(cfg), newCompareCmd(cfg))
	return root
}
