package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyperledger-labs/yui-path-relayer/core"
)

const (
	flagJSON = "json"
	flagYAML = "yaml"

	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
	flagLogOutput       = "log-output"
	flagEnableTelemetry = "enable-telemetry"

	flagPollInterval     = "poll-interval"
	flagMaxAge           = "max-age"
	flagRequestTimeout   = "request-timeout"
	flagLinkConcurrency  = "link-concurrency"
	flagTickAttempts     = "tick-attempts"
	flagTickRetryDelay   = "tick-retry-delay"
	flagFailureThreshold = "failure-threshold"

	flagAccount       = "account"
	flagAddressPrefix = "address-prefix"
	flagGasPrice      = "gas-price"
	flagGasLimit      = "gas-limit"

	flagPathID        = "id"
	flagSourcePort    = "source-port"
	flagSourceVersion = "source-version"
	flagTargetPort    = "target-port"
	flagTargetVersion = "target-version"
	flagOrdering      = "ordering"
)

func yamlFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().BoolP(flagYAML, "y", false, "output using yaml")
	return cmd
}

func jsonFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().BoolP(flagJSON, "j", false, "returns the response in json format")
	return cmd
}

func outputFlags(cmd *cobra.Command) *cobra.Command {
	return yamlFlag(jsonFlag(cmd))
}

// relayerFlags registers the options of the relayer core on cmd.
// Flags are bound to viper when the command runs.
func relayerFlags(cmd *cobra.Command) *cobra.Command {
	def := core.DefaultOptions()
	cmd.Flags().Duration(flagPollInterval, def.PollInterval, "time interval between two relay ticks of a path")
	cmd.Flags().Duration(flagMaxAge, def.MaxAge, "age after which a light client is refreshed")
	cmd.Flags().Duration(flagRequestTimeout, def.RequestTimeout, "timeout of a single relay tick")
	cmd.Flags().Int(flagLinkConcurrency, def.LinkConcurrency, "number of paths linked in parallel")
	cmd.Flags().Uint(flagTickAttempts, def.TickAttempts, "number of attempts of a relay tick")
	cmd.Flags().Duration(flagTickRetryDelay, def.TickRetryDelay, "delay between two attempts of a relay tick")
	cmd.Flags().Int(flagFailureThreshold, def.FailureThreshold, "consecutive failed ticks after which a relay loop escalates")
	return cmd
}

func relayerOptions() core.Options {
	return core.Options{
		PollInterval:     viper.GetDuration(flagPollInterval),
		MaxAge:           viper.GetDuration(flagMaxAge),
		RequestTimeout:   viper.GetDuration(flagRequestTimeout),
		LinkConcurrency:  viper.GetInt(flagLinkConcurrency),
		TickAttempts:     viper.GetUint(flagTickAttempts),
		TickRetryDelay:   viper.GetDuration(flagTickRetryDelay),
		FailureThreshold: viper.GetInt(flagFailureThreshold),
	}
}

func requestTimeout() time.Duration {
	if d := viper.GetDuration(flagRequestTimeout); d > 0 {
		return d
	}
	return core.DefaultRequestTimeout
}
