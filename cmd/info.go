package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
)

func infoCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "print out where the relayer keeps its state",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			return printOutput(cmd, r.Info())
		},
	}
	return outputFlags(cmd)
}
