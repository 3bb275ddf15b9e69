package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/spf13/cobra"
)

func modulesCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "show the chain modules included in the relayer",
		RunE:  noCommand,
	}

	cmd.AddCommand(
		showModulesCmd(ctx),
	)

	return cmd
}

func showModulesCmd(ctx *config.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Shows a list of modules and the capabilities they provide",
		RunE: func(cmd *cobra.Command, args []string) error {
			bi, ok := debug.ReadBuildInfo()
			if !ok {
				return errors.New("could not read build info")
			}

			lines := make([]string, 0, len(ctx.Modules))
			for _, m := range ctx.Modules {
				path, version, err := modulePathVersion(bi, m)
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%s %s %s [%s]", m.Name(), path, version, strings.Join(moduleCapabilities(m), ",")))
			}
			slices.Sort(lines)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return nil
		},
	}
	return cmd
}

func moduleCapabilities(m config.ModuleI) []string {
	var caps []string
	if m.BalanceQuerier(0) != nil {
		caps = append(caps, "query")
	}
	if m.LinkProvider() != nil {
		caps = append(caps, "link")
	}
	return caps
}

// modulePathVersion finds the Go module that provides the package of m
func modulePathVersion(info *debug.BuildInfo, m config.ModuleI) (string, string, error) {
	pkgPath := reflect.TypeOf(m).PkgPath()
	candidates := append([]*debug.Module{&info.Main}, info.Deps...)
	for _, mod := range candidates {
		if mod.Path != "" && strings.HasPrefix(pkgPath, mod.Path) {
			return mod.Path, mod.Version, nil
		}
	}
	return "", "", fmt.Errorf("could not find module info for %s (%s)", m.Name(), pkgPath)
}
