package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/log"
)

func connectCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect [path-id]...",
		Short: "link paths and relay packets between them until interrupted",
		Long: `
Links the given paths, or every configured path when none is given, prints the result
and then relays packets and acknowledgements of the paths that are linked. Paths that
fail to link are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			return connectPaths(cmd, r, args)
		},
	}
	return outputFlags(relayerFlags(cmd))
}

func connectPaths(cmd *cobra.Command, r *core.Relayer, pathIDs []string) error {
	ctx := cmd.Context()
	if len(pathIDs) == 0 {
		paths, err := r.ListPaths(ctx)
		if err != nil {
			return err
		}
		for _, pc := range paths {
			pathIDs = append(pathIDs, pc.Path.ID)
		}
	}

	res, err := r.Link(ctx, pathIDs)
	if err != nil {
		return err
	}
	if err := printOutput(cmd, res); err != nil {
		return err
	}

	logger := log.GetLogger().WithModule("cmd")
	ids := append(append([]string{}, res.LinkedPaths...), res.AlreadyLinkedPaths...)
	if len(ids) == 0 {
		logger.Info("no linked path to relay")
		return nil
	}
	if err := r.Start(ctx, ids); err != nil {
		return err
	}
	logger.Info("relayer started", "paths", ids)

	<-ctx.Done()
	logger.Info("stopping relayer")
	r.Stop()
	return nil
}
