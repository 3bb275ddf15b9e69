package semconv

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// Attribute keys shared by relayer spans. All values are strings.
const (
	ChainIDKey      = attribute.Key("chain_id")      // e.g. "ibc0"
	RPCAddrKey      = attribute.Key("rpc_addr")      // e.g. "http://localhost:26657"
	ConnectionIDKey = attribute.Key("connection_id") // e.g. "connection-0"
	ChannelIDKey    = attribute.Key("channel_id")    // e.g. "channel-0"
	PortIDKey       = attribute.Key("port_id")       // e.g. "transfer"
	PathIDKey       = attribute.Key("path_id")       // e.g. "ibc0-ibc1"
	SideKey         = attribute.Key("side")          // "A" or "B"
	OrderingKey     = attribute.Key("ordering")      // e.g. "ORDER_UNORDERED"
	MaxAgeKey       = attribute.Key("max_age")       // e.g. "24h0m0s"

	// PackageKey is the Go package implementing a traced call.
	PackageKey = attribute.Key("package")
)

// CheckpointAttributes returns the attributes describing a relay checkpoint.
// Heights are encoded as strings because the attribute package does not support uint64.
func CheckpointAttributes(packetHeightA, packetHeightB, ackHeightA, ackHeightB uint64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("packet_height_a", fmt.Sprint(packetHeightA)),
		attribute.String("packet_height_b", fmt.Sprint(packetHeightB)),
		attribute.String("ack_height_a", fmt.Sprint(ackHeightA)),
		attribute.String("ack_height_b", fmt.Sprint(ackHeightB)),
	}
}

// AttributeGroup returns the attributes with their keys prefixed by "<key>.".
func AttributeGroup(key string, attributes ...attribute.KeyValue) []attribute.KeyValue {
	grouped := make([]attribute.KeyValue, len(attributes))
	for i, kv := range attributes {
		grouped[i] = attribute.KeyValue{Key: attribute.Key(key + "." + string(kv.Key)), Value: kv.Value}
	}
	return grouped
}
