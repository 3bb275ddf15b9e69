package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/log"
)

func startCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start [path-id]...",
		Short: "relay packets and acknowledgements of linked paths until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			if err := r.Start(cmd.Context(), args); err != nil {
				return err
			}
			logger := log.GetLogger().WithModule("cmd")
			logger.Info("relayer started", "paths", args)

			<-cmd.Context().Done()
			logger.Info("stopping relayer")
			r.Stop()
			return nil
		},
	}
	return relayerFlags(cmd)
}
