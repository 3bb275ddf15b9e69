package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/internal/telemetry"
	"github.com/hyperledger-labs/yui-path-relayer/log"
	"github.com/hyperledger-labs/yui-path-relayer/otelcore"
	"github.com/hyperledger-labs/yui-path-relayer/signer"
)

const (
	appName   = "ypr"
	envPrefix = "RELAYER"

	tracerName = "github.com/hyperledger-labs/yui-path-relayer"
)

var (
	defaultHome = filepath.Join(os.Getenv("HOME"), ".yui-path-relayer")
)

// Execute adds all child commands to the root command and runs it
func Execute(modules ...config.ModuleI) error {
	// rootCmd represents the base command when called without any subcommands
	var rootCmd = &cobra.Command{
		Use:   appName,
		Short: "This application links IBC paths and relays packets between their chains",
	}

	var otelShutdown func(context.Context) error

	ctx := &config.Context{Modules: modules}

	rootCmd.PersistentFlags().String(flags.FlagHome, defaultHome, "set home directory")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "set the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String(flagLogFormat, "json", "set the log format (text, json)")
	rootCmd.PersistentFlags().String(flagLogOutput, "stderr", "set the log output (stdout, stderr)")
	rootCmd.PersistentFlags().Bool(flagEnableTelemetry, false, "enable OpenTelemetry traces, metrics and logs")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return err
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// bind the flags of the running command only, since commands share flag names
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		enableTelemetry := viper.GetBool(flagEnableTelemetry)
		if enableTelemetry {
			var err error
			if otelShutdown, err = telemetry.SetupOTelSDK(cmd.Context(), telemetry.Service{Name: appName, Version: mainVersion()}); err != nil {
				return fmt.Errorf("failed to set up OpenTelemetry SDK: %w", err)
			}
			if err := telemetry.InitializeMetrics(); err != nil {
				return fmt.Errorf("failed to initialize metrics: %w", err)
			}
		}
		if err := log.InitLogger(
			viper.GetString(flagLogLevel),
			viper.GetString(flagLogFormat),
			viper.GetString(flagLogOutput),
			enableTelemetry,
		); err != nil {
			return err
		}

		ctx.HomePath = viper.GetString(flags.FlagHome)
		store, err := config.New(config.DefaultConfigPath(ctx.HomePath))
		if err != nil {
			return err
		}
		ctx.Store = store
		return nil
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		if otelShutdown == nil {
			return nil
		}
		return otelShutdown(context.WithoutCancel(cmd.Context()))
	}

	rootCmd.AddCommand(
		configCmd(ctx),
		chainsCmd(ctx),
		pathsCmd(ctx),
		linkCmd(ctx),
		startCmd(ctx),
		connectCmd(ctx),
		queryCmd(ctx),
		infoCmd(ctx),
		modulesCmd(ctx),
	)

	cobra.EnableCommandSorting = false
	rootCmd.SilenceUsage = true

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(sigCtx)
}

// newRelayer builds a relayer from the modules and the stored document
func newRelayer(ctx *config.Context) (*core.Relayer, error) {
	client, err := config.ChainClientFromModules(ctx.Modules, requestTimeout())
	if err != nil {
		return nil, err
	}
	client = otelcore.NewChainClient(client, otel.Tracer(tracerName))
	return core.NewRelayer(ctx.Store, client, signer.NewKeyring(), relayerOptions()), nil
}

// mainVersion returns the version of the main module, if it was recorded
func mainVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi.Main.Version
	}
	return ""
}

func noCommand(cmd *cobra.Command, args []string) error {
	cmd.Help()
	return fmt.Errorf("specify a subcommand")
}
