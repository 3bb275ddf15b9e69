package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/core"
)

func chainsCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chains",
		Aliases: []string{"ch"},
		Short:   "manage chain configurations",
		RunE:    noCommand,
	}

	cmd.AddCommand(
		chainsEnsureCmd(ctx),
		chainsListCmd(ctx),
	)

	return cmd
}

func chainsEnsureCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure [rpc-addr]",
		Short: "registers the chain served at rpc-addr, or updates its options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			res, err := r.EnsureChainSetup(cmd.Context(), args[0], chainSetupOptions(cmd))
			if err != nil {
				return err
			}
			return printOutput(cmd, res)
		},
	}
	cmd.Flags().String(flagAccount, core.DefaultAccount, "name of the relayer account on the chain")
	cmd.Flags().String(flagAddressPrefix, core.DefaultAddressPrefix, "bech32 address prefix of the chain")
	cmd.Flags().String(flagGasPrice, core.DefaultGasPrice, "gas price used for relayer transactions")
	cmd.Flags().Int64(flagGasLimit, core.DefaultGasLimit, "gas limit used for relayer transactions")
	return outputFlags(cmd)
}

// chainSetupOptions returns the options given explicitly, so that an
// existing chain keeps the values that were not given
func chainSetupOptions(cmd *cobra.Command) core.ChainSetupOptions {
	var opts core.ChainSetupOptions
	if cmd.Flags().Changed(flagAccount) {
		opts.Account, _ = cmd.Flags().GetString(flagAccount)
	}
	if cmd.Flags().Changed(flagAddressPrefix) {
		opts.AddressPrefix, _ = cmd.Flags().GetString(flagAddressPrefix)
	}
	if cmd.Flags().Changed(flagGasPrice) {
		opts.GasPrice, _ = cmd.Flags().GetString(flagGasPrice)
	}
	if cmd.Flags().Changed(flagGasLimit) {
		opts.GasLimit, _ = cmd.Flags().GetInt64(flagGasLimit)
	}
	return opts
}

func chainsListCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "print out configured chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			chains := cfg.Chains
			if chains == nil {
				chains = []core.ChainConfig{}
			}
			return printOutput(cmd, chains)
		},
	}
	return outputFlags(cmd)
}
