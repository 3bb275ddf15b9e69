package core

import (
	"reflect"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("github.com/hyperledger-labs/yui-path-relayer/core")
)

// WithPathAttributes sets the attributes of both ends of the path to a span
func WithPathAttributes(path Path) trace.SpanStartOption {
	attrs := []attribute.KeyValue{AttributeKeyPathID.String(path.ID)}
	attrs = append(attrs, AttributeGroup("src", PathEndAttributes(path.Src)...)...)
	attrs = append(attrs, AttributeGroup("dst", PathEndAttributes(path.Dst)...)...)
	return trace.WithAttributes(attrs...)
}

// WithChainAttributes sets the chain id to a span
func WithChainAttributes(chainID string) trace.SpanStartOption {
	return trace.WithAttributes(AttributeKeyChainID.String(chainID))
}

// withPackage adds the package name of the function/method `v`
func withPackage(v any) trace.SpanStartOption {
	return trace.WithAttributes(AttributeKeyPackage.String(getPackageName(v)))
}

func getPackageName(v any) string {
	if v == nil {
		return ""
	}

	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return rt.PkgPath()
}
