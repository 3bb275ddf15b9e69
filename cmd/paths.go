package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/core"
)

func pathsCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paths",
		Aliases: []string{"pth"},
		Short:   "manage path configurations",
		Long: `
A path joins a port on a source chain with a port on a destination chain. A created path
is unlinked until "link" establishes its connections and channels.`,
		RunE: noCommand,
	}

	cmd.AddCommand(
		pathsCreateCmd(ctx),
		pathsShowCmd(ctx),
		pathsListCmd(ctx),
	)

	return cmd
}

func pathsCreateCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [src-chain-id] [dst-chain-id]",
		Short: "add an unlinked path between two configured chains",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			id, _ := cmd.Flags().GetString(flagPathID)
			opts := core.DefaultConnectOptions()
			opts.SourcePort, _ = cmd.Flags().GetString(flagSourcePort)
			opts.SourceVersion, _ = cmd.Flags().GetString(flagSourceVersion)
			opts.TargetPort, _ = cmd.Flags().GetString(flagTargetPort)
			opts.TargetVersion, _ = cmd.Flags().GetString(flagTargetVersion)
			opts.Ordering, _ = cmd.Flags().GetString(flagOrdering)
			if _, err := opts.ChannelOrder(); err != nil {
				return err
			}
			pc, err := r.CreatePath(cmd.Context(), core.CreatePathRequest{
				ID:      id,
				Src:     core.PathEnd{ChainID: args[0]},
				Dst:     core.PathEnd{ChainID: args[1]},
				Options: &opts,
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, pc)
		},
	}
	def := core.DefaultConnectOptions()
	cmd.Flags().String(flagPathID, "", "id of the path, derived from the chain ids when empty")
	cmd.Flags().String(flagSourcePort, def.SourcePort, "port on the source chain")
	cmd.Flags().String(flagSourceVersion, def.SourceVersion, "channel version on the source chain")
	cmd.Flags().String(flagTargetPort, def.TargetPort, "port on the destination chain")
	cmd.Flags().String(flagTargetVersion, def.TargetVersion, "channel version on the destination chain")
	cmd.Flags().String(flagOrdering, def.Ordering, "channel ordering (ORDER_UNORDERED, ORDER_ORDERED)")
	return outputFlags(cmd)
}

func pathsShowCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [path-id]",
		Short: "print out a configured path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			pc, err := r.GetPath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printOutput(cmd, pc)
		},
	}
	return outputFlags(cmd)
}

func pathsListCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "print out configured paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			paths, err := r.ListPaths(cmd.Context())
			if err != nil {
				return err
			}
			if paths == nil {
				paths = []core.PathConfig{}
			}
			return printOutput(cmd, paths)
		},
	}
	return outputFlags(cmd)
}
