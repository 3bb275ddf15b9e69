package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGetPackageName(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{
			name: "pointer",
			v:    &PathLinker{},
			want: "github.com/hyperledger-labs/yui-path-relayer/core",
		},
		{
			name: "value",
			v:    fakeSigner{},
			want: "github.com/hyperledger-labs/yui-path-relayer/core",
		},
		{
			name: "nil",
			v:    nil,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getPackageName(tt.v); got != tt.want {
				t.Errorf("getPackageName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithPathAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	path := linkedPath("p1", "ibc0", "ibc1").Path
	_, span := tp.Tracer("test").Start(context.Background(), "test", WithPathAttributes(path))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := attribute.NewSet(spans[0].Attributes()...)

	for key, want := range map[attribute.Key]string{
		AttributeKeyPathID: "p1",
		"src.chain_id":     "ibc0",
		"src.port_id":      TransferPort,
		"src.channel_id":   "channel-0",
		"dst.chain_id":     "ibc1",
		"dst.channel_id":   "channel-1",
	} {
		v, ok := attrs.Value(key)
		require.True(t, ok, key)
		require.Equal(t, want, v.AsString(), key)
	}
}
