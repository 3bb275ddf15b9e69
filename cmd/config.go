package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperledger-labs/yui-path-relayer/config"
)

func configCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "manage configuration file",
		RunE:    noCommand,
	}

	cmd.AddCommand(
		configShowCmd(ctx),
		configInitCmd(ctx),
	)

	return cmd
}

// Command for inititalizing an empty config at the --home location
func configInitCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Creates a default home directory at path defined by --home",
		RunE: func(cmd *cobra.Command, args []string) error {
			// the store creates the document when it opens it
			fmt.Fprintln(cmd.OutOrStdout(), ctx.Store.Path())
			return nil
		},
	}
	return cmd
}

// Command for printing current configuration
func configShowCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s", "list", "l"},
		Short:   "Prints current configuration without the mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			cfg.Mnemonic = ""
			return printOutput(cmd, cfg)
		},
	}
	return outputFlags(cmd)
}
