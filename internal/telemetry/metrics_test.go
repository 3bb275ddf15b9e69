package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader sdkmetric.Reader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestInt64SyncGauge(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	gauge, err := NewInt64SyncGauge(meter, "test.height")
	require.NoError(t, err)

	p1 := []attribute.KeyValue{AttributeKeyPathID.String("p1"), AttributeKeyField.String("packetHeightA")}
	gauge.Set(10, p1...)
	gauge.Set(12, p1...)
	gauge.Set(3, AttributeKeyPathID.String("p2"), AttributeKeyField.String("packetHeightA"))

	v, ok := gauge.Value(p1...)
	require.True(t, ok)
	require.Equal(t, int64(12), v)
	_, ok = gauge.Value(AttributeKeyPathID.String("p3"))
	require.False(t, ok)

	data, ok := collect(t, reader)["test.height"].(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, data.DataPoints, 2)
	for _, dp := range data.DataPoints {
		id, _ := dp.Attributes.Value(AttributeKeyPathID)
		switch id.AsString() {
		case "p1":
			require.Equal(t, int64(12), dp.Value)
		case "p2":
			require.Equal(t, int64(3), dp.Value)
		default:
			t.Fatalf("unexpected data point %v", dp)
		}
	}
}

func TestRecordersBeforeInitialization(t *testing.T) {
	saved := RelayTicksCounter
	RelayTicksCounter = nil
	defer func() { RelayTicksCounter = saved }()

	// must not panic
	AddRelayTick(context.Background(), "p1", true)
}

func TestInitializeMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	// the package meter delegates to the first provider set globally
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	require.NoError(t, InitializeMetrics())

	ctx := context.Background()
	AddRelayTick(ctx, "p1", true)
	AddRelayTick(ctx, "p1", false)
	AddRelayTick(ctx, "p1", false)
	AddLinkResult(ctx, "p1", StatusAlreadyLinked)
	SetCheckpointHeight("p1", "ackHeightB", 42)

	metrics := collect(t, reader)

	ticks, ok := metrics["relayer.relay_ticks"].(metricdata.Sum[int64])
	require.True(t, ok)
	byStatus := make(map[string]int64)
	for _, dp := range ticks.DataPoints {
		status, _ := dp.Attributes.Value(AttributeKeyStatus)
		byStatus[status.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{StatusSuccess: 1, StatusFailure: 2}, byStatus)

	links, ok := metrics["relayer.link_results"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, links.DataPoints, 1)

	heights, ok := metrics["relayer.checkpoint_height"].(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, heights.DataPoints, 1)
	require.Equal(t, int64(42), heights.DataPoints[0].Value)
}
