package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
)

// queryCmd represents the chain command
func queryCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "query functionality for configured chains",
		RunE:    noCommand,
	}

	cmd.AddCommand(
		queryBalanceCmd(ctx),
	)

	return cmd
}

func queryBalanceCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [chain-id]...",
		Short: "Query the balance of the relayer account on chains, all configured chains by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRelayer(ctx)
			if err != nil {
				return err
			}
			balances, err := r.GetAccountBalance(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return printOutput(cmd, balances)
		},
	}
	return outputFlags(cmd)
}
