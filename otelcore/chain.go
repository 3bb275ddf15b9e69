package otelcore

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/otelcore/semconv"
)

// ChainClient wraps a core.ChainClient so that every call is traced
type ChainClient struct {
	core.ChainClient
	tracer trace.Tracer
}

func NewChainClient(client core.ChainClient, tracer trace.Tracer) core.ChainClient {
	return &ChainClient{
		ChainClient: client,
		tracer:      tracer,
	}
}

func UnwrapChainClient(client core.ChainClient) (core.ChainClient, error) {
	c, ok := client.(*ChainClient)
	if !ok {
		return nil, fmt.Errorf("chain client type is not %T, but %T", &ChainClient{}, client)
	}
	return c.ChainClient, nil
}

func (c *ChainClient) QueryChainID(ctx context.Context, rpcAddr string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "ChainClient.QueryChainID",
		trace.WithAttributes(semconv.RPCAddrKey.String(rpcAddr)),
	)
	defer span.End()

	chainID, err := c.ChainClient.QueryChainID(ctx, rpcAddr)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(semconv.ChainIDKey.String(chainID))
	}
	return chainID, err
}

func (c *ChainClient) QueryBalance(ctx context.Context, chain core.ChainConfig, address string) (sdk.Coins, error) {
	ctx, span := c.tracer.Start(ctx, "ChainClient.QueryBalance",
		core.WithChainAttributes(chain.ChainID),
	)
	defer span.End()

	coins, err := c.ChainClient.QueryBalance(ctx, chain, address)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return coins, err
}

func (c *ChainClient) ConnectWithSigner(ctx context.Context, chain core.ChainConfig, signer core.Signer) (core.ClientHandle, error) {
	ctx, span := c.tracer.Start(ctx, "ChainClient.ConnectWithSigner",
		core.WithChainAttributes(chain.ChainID),
	)
	defer span.End()

	handle, err := c.ChainClient.ConnectWithSigner(ctx, chain, signer)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return handle, err
}

func (c *ChainClient) CreateLinkWithNewConnections(ctx context.Context, a, b core.ClientHandle) (core.Link, error) {
	ctx, span := c.tracer.Start(ctx, "ChainClient.CreateLinkWithNewConnections",
		withHandlePairAttributes(a, b),
	)
	defer span.End()

	link, err := c.ChainClient.CreateLinkWithNewConnections(ctx, a, b)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return NewLink(link, c.tracer), nil
}

func (c *ChainClient) CreateLinkWithExistingConnections(ctx context.Context, a, b core.ClientHandle, connA, connB string) (core.Link, error) {
	ctx, span := c.tracer.Start(ctx, "ChainClient.CreateLinkWithExistingConnections",
		withHandlePairAttributes(a, b),
		trace.WithAttributes(semconv.AttributeGroup("src", semconv.ConnectionIDKey.String(connA))...),
		trace.WithAttributes(semconv.AttributeGroup("dst", semconv.ConnectionIDKey.String(connB))...),
	)
	defer span.End()

	link, err := c.ChainClient.CreateLinkWithExistingConnections(ctx, a, b, connA, connB)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return NewLink(link, c.tracer), nil
}

func withHandlePairAttributes(a, b core.ClientHandle) trace.SpanStartOption {
	attrs := semconv.AttributeGroup("src", semconv.ChainIDKey.String(a.ChainID()))
	attrs = append(attrs, semconv.AttributeGroup("dst", semconv.ChainIDKey.String(b.ChainID()))...)
	return trace.WithAttributes(attrs...)
}
