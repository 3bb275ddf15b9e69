package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const name = "github.com/hyperledger-labs/yui-path-relayer"

// Environment variables read on top of the ones the Go SDK handles itself.
// cf. https://opentelemetry.io/docs/specs/otel/configuration/sdk-environment-variables/
const (
	envPropagators     = "OTEL_PROPAGATORS"
	envTracesExporter  = "OTEL_TRACES_EXPORTER"
	envMetricsExporter = "OTEL_METRICS_EXPORTER"
	envLogsExporter    = "OTEL_LOGS_EXPORTER"
	envPrometheusHost  = "OTEL_EXPORTER_PROMETHEUS_HOST"
	envPrometheusPort  = "OTEL_EXPORTER_PROMETHEUS_PORT"

	// not standard, modeled after the OTLP exporter settings
	envConsoleTracesWriter  = "OTEL_EXPORTER_CONSOLE_TRACES_WRITER"
	envConsoleMetricsWriter = "OTEL_EXPORTER_CONSOLE_METRICS_WRITER"
	envConsoleLogsWriter    = "OTEL_EXPORTER_CONSOLE_LOGS_WRITER"
)

const (
	defaultPropagators    = "tracecontext,baggage"
	defaultExporter       = "otlp"
	defaultPrometheusHost = "localhost"
	defaultPrometheusPort = "9464"
	defaultConsoleWriter  = "stdout"

	exporterNone = "none"
)

// Service identifies the relayer process in exported telemetry.
// OTEL_SERVICE_NAME and OTEL_RESOURCE_ATTRIBUTES take precedence.
type Service struct {
	Name    string
	Version string
}

// SetupOTelSDK installs global tracer, meter and logger providers configured
// from the OTEL_* environment variables. Every signal supports the "otlp",
// "console" and "none" exporters, and metrics also support "prometheus".
// An unknown exporter or propagator is an error rather than a warning.
//
// On success the caller must call shutdown to flush pending telemetry.
func SetupOTelSDK(ctx context.Context, svc Service) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error
	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, shutdown(ctx))
		}
	}()

	res, err := newResource(ctx, svc)
	if err != nil {
		return nil, err
	}
	prop, err := newPropagator()
	if err != nil {
		return nil, err
	}

	tp, err := newTracerProvider(ctx, res)
	if err != nil {
		return nil, err
	}
	shutdownFuncs = append(shutdownFuncs, tp.Shutdown)

	mp, err := newMeterProvider(ctx, res)
	if err != nil {
		return nil, err
	}
	shutdownFuncs = append(shutdownFuncs, mp.Shutdown)

	lp, err := newLoggerProvider(ctx, res)
	if err != nil {
		return nil, err
	}
	shutdownFuncs = append(shutdownFuncs, lp.Shutdown)

	otel.SetTextMapPropagator(prop)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	global.SetLoggerProvider(lp)
	return shutdown, nil
}

func newResource(ctx context.Context, svc Service) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(svc.Name)}
	if svc.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(svc.Version))
	}
	// later options override earlier ones, so the environment wins
	return resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(attrs...),
		resource.WithFromEnv(),
	)
}

func newPropagator() (propagation.TextMapPropagator, error) {
	var propagators []propagation.TextMapPropagator
	for _, p := range splitEnv(envPropagators, defaultPropagators) {
		switch p {
		case "tracecontext":
			propagators = append(propagators, propagation.TraceContext{})
		case "baggage":
			propagators = append(propagators, propagation.Baggage{})
		default:
			return nil, fmt.Errorf("unsupported propagator: %q from %s=%q", p, envPropagators, os.Getenv(envPropagators))
		}
	}
	return propagation.NewCompositeTextMapPropagator(propagators...), nil
}

// exporterFactory builds the component of one exporter of a signal
type exporterFactory[T any] func(ctx context.Context) (T, error)

// selectExporters builds a component for every exporter listed in envName.
// The "none" exporter builds nothing.
func selectExporters[T any](ctx context.Context, envName string, factories map[string]exporterFactory[T]) ([]T, error) {
	var out []T
	for _, exporter := range splitEnv(envName, defaultExporter) {
		if exporter == exporterNone {
			continue
		}
		factory, ok := factories[exporter]
		if !ok {
			return nil, fmt.Errorf("unsupported exporter: %q from %s=%q", exporter, envName, os.Getenv(envName))
		}
		v, err := factory(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create the %s exporter: %w", exporter, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporters, err := selectExporters(ctx, envTracesExporter, map[string]exporterFactory[sdktrace.SpanExporter]{
		"otlp": func(ctx context.Context) (sdktrace.SpanExporter, error) {
			return otlptracegrpc.New(ctx)
		},
		"console": func(context.Context) (sdktrace.SpanExporter, error) {
			w, err := consoleWriter(envConsoleTracesWriter)
			if err != nil {
				return nil, err
			}
			return stdouttrace.New(stdouttrace.WithWriter(w))
		},
	})
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	for _, exp := range exporters {
		opts = append(opts, sdktrace.WithBatcher(exp))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	readers, err := selectExporters(ctx, envMetricsExporter, map[string]exporterFactory[sdkmetric.Reader]{
		"otlp": func(ctx context.Context) (sdkmetric.Reader, error) {
			exp, err := otlpmetricgrpc.New(ctx)
			if err != nil {
				return nil, err
			}
			return sdkmetric.NewPeriodicReader(exp), nil
		},
		"console": func(context.Context) (sdkmetric.Reader, error) {
			w, err := consoleWriter(envConsoleMetricsWriter)
			if err != nil {
				return nil, err
			}
			exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
			if err != nil {
				return nil, err
			}
			return sdkmetric.NewPeriodicReader(exp), nil
		},
		"prometheus": func(context.Context) (sdkmetric.Reader, error) {
			addr := getEnv(envPrometheusHost, defaultPrometheusHost) + ":" + getEnv(envPrometheusPort, defaultPrometheusPort)
			return NewPrometheusExporter(addr)
		},
	})
	if err != nil {
		return nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}
	return sdkmetric.NewMeterProvider(opts...), nil
}

func newLoggerProvider(ctx context.Context, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporters, err := selectExporters(ctx, envLogsExporter, map[string]exporterFactory[sdklog.Exporter]{
		"otlp": func(ctx context.Context) (sdklog.Exporter, error) {
			return otlploggrpc.New(ctx)
		},
		"console": func(context.Context) (sdklog.Exporter, error) {
			w, err := consoleWriter(envConsoleLogsWriter)
			if err != nil {
				return nil, err
			}
			return stdoutlog.New(stdoutlog.WithWriter(w))
		},
	})
	if err != nil {
		return nil, err
	}

	opts := []sdklog.LoggerProviderOption{sdklog.WithResource(res)}
	for _, exp := range exporters {
		opts = append(opts, sdklog.WithProcessor(sdklog.NewBatchProcessor(exp)))
	}
	return sdklog.NewLoggerProvider(opts...), nil
}

func getEnv(envName, defaultValue string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return defaultValue
}

// splitEnv returns the comma separated values of envName
func splitEnv(envName, defaultValue string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(envName, defaultValue), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func consoleWriter(envName string) (io.Writer, error) {
	switch v := getEnv(envName, defaultConsoleWriter); v {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("unknown writer: %q from %s=%q", v, envName, os.Getenv(envName))
	}
}
