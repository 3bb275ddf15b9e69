package otelcore

import (
	"context"
	"fmt"
	"time"

	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/otelcore/semconv"
)

// Link wraps a core.Link so that every call is traced
type Link struct {
	core.Link
	tracer trace.Tracer
}

func NewLink(link core.Link, tracer trace.Tracer) core.Link {
	return &Link{
		Link:   link,
		tracer: tracer,
	}
}

func UnwrapLink(link core.Link) (core.Link, error) {
	l, ok := link.(*Link)
	if !ok {
		return nil, fmt.Errorf("link type is not %T, but %T", &Link{}, link)
	}
	return l.Link, nil
}

func (l *Link) CreateChannel(ctx context.Context, side core.Side, srcPort, dstPort string, order chantypes.Order, version string) (*core.ChannelPair, error) {
	ctx, span := l.tracer.Start(ctx, "Link.CreateChannel",
		trace.WithAttributes(
			semconv.SideKey.String(string(side)),
			semconv.OrderingKey.String(order.String()),
		),
		trace.WithAttributes(semconv.AttributeGroup("src", semconv.PortIDKey.String(srcPort))...),
		trace.WithAttributes(semconv.AttributeGroup("dst", semconv.PortIDKey.String(dstPort))...),
	)
	defer span.End()

	channels, err := l.Link.CreateChannel(ctx, side, srcPort, dstPort, order, version)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return channels, err
}

func (l *Link) RelayPendingPacketsAndAcks(ctx context.Context, checkpoint core.PacketHeights, srcRetries, dstRetries int) (*core.PacketHeights, error) {
	ctx, span := l.tracer.Start(ctx, "Link.RelayPendingPacketsAndAcks",
		trace.WithAttributes(semconv.AttributeGroup("checkpoint", semconv.CheckpointAttributes(
			checkpoint.PacketHeightA, checkpoint.PacketHeightB, checkpoint.AckHeightA, checkpoint.AckHeightB,
		)...)...),
	)
	defer span.End()

	next, err := l.Link.RelayPendingPacketsAndAcks(ctx, checkpoint, srcRetries, dstRetries)
	if next != nil {
		span.SetAttributes(semconv.AttributeGroup("next", semconv.CheckpointAttributes(
			next.PacketHeightA, next.PacketHeightB, next.AckHeightA, next.AckHeightB,
		)...)...)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return next, err
}

func (l *Link) UpdateClientIfStale(ctx context.Context, side core.Side, maxAge time.Duration) error {
	ctx, span := l.tracer.Start(ctx, "Link.UpdateClientIfStale",
		trace.WithAttributes(
			semconv.SideKey.String(string(side)),
			semconv.MaxAgeKey.String(maxAge.String()),
		),
	)
	defer span.End()

	err := l.Link.UpdateClientIfStale(ctx, side, maxAge)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
