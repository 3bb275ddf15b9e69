package core

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/hyperledger-labs/yui-path-relayer/otelcore/semconv"
)

const (
	AttributeKeyChainID      = semconv.ChainIDKey
	AttributeKeyConnectionID = semconv.ConnectionIDKey
	AttributeKeyChannelID    = semconv.ChannelIDKey
	AttributeKeyPortID       = semconv.PortIDKey
	AttributeKeyPathID       = semconv.PathIDKey
	AttributeKeySide         = semconv.SideKey
	AttributeKeyPackage      = semconv.PackageKey
)

// AttributeGroup prefixes the given key to all attributes
func AttributeGroup(key string, attributes ...attribute.KeyValue) []attribute.KeyValue {
	return semconv.AttributeGroup(key, attributes...)
}

// PathEndAttributes returns the attributes describing one end of a path
func PathEndAttributes(end PathEnd) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		AttributeKeyChainID.String(end.ChainID),
		AttributeKeyPortID.String(end.PortID),
	}
	if end.ChannelID != "" {
		attrs = append(attrs, AttributeKeyChannelID.String(end.ChannelID))
	}
	return attrs
}
