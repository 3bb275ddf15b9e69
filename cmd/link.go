package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
)

func linkCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link [path-id]...",
		Short: "create connections and channels of unlinked paths",
		Long: `
Links every given path that is not linked yet. The relayer account must hold enough of the
gas denom on both chains to pay for the handshakes. Paths that fail are reported with the
reason and can be linked again later.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			res, err := r.Link(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}
	return outputFlags(relayerFlags(cmd))
}
