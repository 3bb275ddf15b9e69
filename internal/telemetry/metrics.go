package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hyperledger-labs/yui-path-relayer/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	api "go.opentelemetry.io/otel/metric"
)

const (
	namespaceRoot = "relayer"

	AttributeKeyPathID = attribute.Key("path_id")
	AttributeKeyField  = attribute.Key("field")
	AttributeKeyStatus = attribute.Key("status")

	StatusSuccess       = "success"
	StatusFailure       = "failure"
	StatusAlreadyLinked = "already_linked"
)

var (
	CheckpointHeightGauge          *Int64SyncGauge
	RelayTicksCounter              api.Int64Counter
	RelayFailureEscalationsCounter api.Int64Counter
	LinkResultsCounter             api.Int64Counter

	meter = otel.Meter(name)
)

func InitializeMetrics() error {
	var err error

	// create the instrument "relayer.checkpoint_height"
	name := fmt.Sprintf("%s.checkpoint_height", namespaceRoot)
	if CheckpointHeightGauge, err = NewInt64SyncGauge(
		meter,
		name,
		api.WithUnit("1"),
		api.WithDescription("latest persisted packet/ack checkpoint height of a path"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	// create the instrument "relayer.relay_ticks"
	name = fmt.Sprintf("%s.relay_ticks", namespaceRoot)
	if RelayTicksCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of relay ticks by outcome"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	// create the instrument "relayer.relay_failure_escalations"
	name = fmt.Sprintf("%s.relay_failure_escalations", namespaceRoot)
	if RelayFailureEscalationsCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of times a relay loop reached its consecutive failure threshold"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	// create the instrument "relayer.link_results"
	name = fmt.Sprintf("%s.link_results", namespaceRoot)
	if LinkResultsCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of link attempts by outcome"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	return nil
}

// The recorders below are no-ops until InitializeMetrics has been called.

func SetCheckpointHeight(pathID, field string, height uint64) {
	if CheckpointHeightGauge == nil {
		return
	}
	CheckpointHeightGauge.Set(int64(height), AttributeKeyPathID.String(pathID), AttributeKeyField.String(field))
}

func AddRelayTick(ctx context.Context, pathID string, ok bool) {
	if RelayTicksCounter == nil {
		return
	}
	status := StatusSuccess
	if !ok {
		status = StatusFailure
	}
	RelayTicksCounter.Add(ctx, 1, api.WithAttributes(AttributeKeyPathID.String(pathID), AttributeKeyStatus.String(status)))
}

func AddRelayFailureEscalation(ctx context.Context, pathID string) {
	if RelayFailureEscalationsCounter == nil {
		return
	}
	RelayFailureEscalationsCounter.Add(ctx, 1, api.WithAttributes(AttributeKeyPathID.String(pathID)))
}

func AddLinkResult(ctx context.Context, pathID, status string) {
	if LinkResultsCounter == nil {
		return
	}
	LinkResultsCounter.Add(ctx, 1, api.WithAttributes(AttributeKeyPathID.String(pathID), AttributeKeyStatus.String(status)))
}

func NewPrometheusExporter(addr string) (*prometheus.Exporter, error) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger := log.GetLogger().WithModule("telemetry")
			logger.Fatal("Prometheus exporter server failed", err)
		}
	}()

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create the Prometheus Exporter: %v", err)
	}

	return exporter, nil
}
