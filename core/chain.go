package core

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	chantypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
)

// Side identifies one end of a Link
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Default retry budgets handed to the packet relay. The destination side
// gets more attempts since confirmation there is usually the bottleneck.
const (
	DefaultSrcRelayRetries = 2
	DefaultDstRelayRetries = 6
)

// ChainClient is the capability to query and transact against chains.
// The relayer core never inspects how it is implemented.
//
//go:generate mockgen -source=chain.go -destination=mock_chain.go -package core
type ChainClient interface {
	BalanceQuerier
	LinkProvider
}

// BalanceQuerier queries chain state that does not require signing
type BalanceQuerier interface {
	// QueryChainID returns the chain id served by the rpc endpoint
	QueryChainID(ctx context.Context, rpcAddr string) (string, error)

	// QueryBalance returns the coins owned by address on the chain
	QueryBalance(ctx context.Context, chain ChainConfig, address string) (sdk.Coins, error)
}

// LinkProvider establishes and reopens links between two chains
type LinkProvider interface {
	// ConnectWithSigner returns a client of the chain that signs with signer
	ConnectWithSigner(ctx context.Context, chain ChainConfig, signer Signer) (ClientHandle, error)

	// CreateLinkWithNewConnections creates clients and a connection pair between a and b
	CreateLinkWithNewConnections(ctx context.Context, a, b ClientHandle) (Link, error)

	// CreateLinkWithExistingConnections reopens a link over an existing connection pair
	CreateLinkWithExistingConnections(ctx context.Context, a, b ClientHandle, connA, connB string) (Link, error)
}

// ClientHandle is a signing client connected to a single chain
type ClientHandle interface {
	// ChainID returns the id of the connected chain
	ChainID() string

	// Address returns the address of the signer on the connected chain
	Address() string
}

// Link is an established connection pair between two chains
type Link interface {
	// Connections returns the connection ids of both ends
	Connections() Connections

	// CreateChannel runs a channel handshake initiated from side
	CreateChannel(ctx context.Context, side Side, srcPort, dstPort string, order chantypes.Order, version string) (*ChannelPair, error)

	// RelayPendingPacketsAndAcks relays everything pending since checkpoint and
	// returns the next checkpoint. A non-nil checkpoint returned together with an
	// error reflects progress made before the failure.
	RelayPendingPacketsAndAcks(ctx context.Context, checkpoint PacketHeights, srcRetries, dstRetries int) (*PacketHeights, error)

	// UpdateClientIfStale refreshes the light client held by side when its
	// latest header is older than maxAge
	UpdateClientIfStale(ctx context.Context, side Side, maxAge time.Duration) error
}

// ChannelPair holds the channel ids created by a channel handshake
type ChannelPair struct {
	SrcChannelID  string
	DestChannelID string
}

// Signer provides the account used to sign transactions.
// Key material never leaves the implementation.
type Signer interface {
	// Address returns the bech32 account address with the given prefix
	Address(prefix string) (string, error)
}

type chainClient struct {
	BalanceQuerier
	LinkProvider
}

// NewChainClient composes a ChainClient. A nil LinkProvider makes every link
// operation fail with ErrLinkProviderUnavailable.
func NewChainClient(q BalanceQuerier, lp LinkProvider) ChainClient {
	if lp == nil {
		lp = unavailableLinkProvider{}
	}
	return chainClient{BalanceQuerier: q, LinkProvider: lp}
}

type unavailableLinkProvider struct{}

func (unavailableLinkProvider) ConnectWithSigner(context.Context, ChainConfig, Signer) (ClientHandle, error) {
	return nil, ErrLinkProviderUnavailable
}

func (unavailableLinkProvider) CreateLinkWithNewConnections(context.Context, ClientHandle, ClientHandle) (Link, error) {
	return nil, ErrLinkProviderUnavailable
}

func (unavailableLinkProvider) CreateLinkWithExistingConnections(context.Context, ClientHandle, ClientHandle, string, string) (Link, error) {
	return nil, ErrLinkProviderUnavailable
}
