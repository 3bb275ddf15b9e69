package tendermint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	libclient "github.com/cometbft/cometbft/rpc/jsonrpc/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/gogoproto/proto"

	"github.com/hyperledger-labs/yui-path-relayer/core"
	"github.com/hyperledger-labs/yui-path-relayer/log"
)

const (
	allBalancesQueryPath = "/cosmos.bank.v1beta1.Query/AllBalances"
	balancePageLimit     = 1000

	DefaultTimeout = 30 * time.Second
)

// RPCClient is the subset of the CometBFT RPC used by Querier
type RPCClient interface {
	Status(ctx context.Context) (*coretypes.ResultStatus, error)
	ABCIQueryWithOptions(ctx context.Context, path string, data bytes.HexBytes, opts rpcclient.ABCIQueryOptions) (*coretypes.ResultABCIQuery, error)
}

// RPCClientFactory creates an RPC client for the endpoint at addr
type RPCClientFactory func(addr string, timeout time.Duration) (RPCClient, error)

var _ core.BalanceQuerier = (*Querier)(nil)

// Querier queries chain state over the CometBFT RPC of each chain.
// RPC clients are created once per endpoint and reused.
type Querier struct {
	timeout   time.Duration
	newClient RPCClientFactory

	mu      sync.Mutex
	clients map[string]RPCClient
}

func NewQuerier(timeout time.Duration) *Querier {
	return NewQuerierWithFactory(timeout, newRPCClient)
}

func NewQuerierWithFactory(timeout time.Duration, factory RPCClientFactory) *Querier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Querier{
		timeout:   timeout,
		newClient: factory,
		clients:   make(map[string]RPCClient),
	}
}

// QueryChainID returns the network reported by the node status
func (q *Querier) QueryChainID(ctx context.Context, rpcAddr string) (string, error) {
	client, err := q.client(rpcAddr)
	if err != nil {
		return "", err
	}
	status, err := client.Status(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query status of %s: %w", rpcAddr, err)
	}
	chainID := status.NodeInfo.Network
	if chainID == "" {
		return "", fmt.Errorf("node at %s reported an empty chain id", rpcAddr)
	}
	return chainID, nil
}

// QueryBalance returns all balances of address, following pagination
func (q *Querier) QueryBalance(ctx context.Context, chain core.ChainConfig, address string) (sdk.Coins, error) {
	defer GetQuerierLogger(chain.ChainID).TimeTrackContext(ctx, time.Now(), "QueryBalance")

	client, err := q.client(chain.RPCAddr)
	if err != nil {
		return nil, err
	}

	var coins sdk.Coins
	var nextKey []byte
	for {
		req := &banktypes.QueryAllBalancesRequest{
			Address: address,
			Pagination: &query.PageRequest{
				Key:   nextKey,
				Limit: balancePageLimit,
			},
		}
		var res banktypes.QueryAllBalancesResponse
		if err := abciQuery(ctx, client, allBalancesQueryPath, req, &res); err != nil {
			return nil, fmt.Errorf("failed to query balances of %s on %s: %w", address, chain.ChainID, err)
		}
		coins = append(coins, res.Balances...)
		if res.Pagination == nil || len(res.Pagination.NextKey) == 0 {
			break
		}
		nextKey = res.Pagination.NextKey
	}
	return coins, nil
}

func abciQuery(ctx context.Context, client RPCClient, path string, req, res proto.Message) error {
	bz, err := proto.Marshal(req)
	if err != nil {
		return err
	}
	result, err := client.ABCIQueryWithOptions(ctx, path, bz, rpcclient.ABCIQueryOptions{})
	if err != nil {
		return err
	}
	if !result.Response.IsOK() {
		return fmt.Errorf("query %s failed with code %d: %s", path, result.Response.Code, result.Response.Log)
	}
	return proto.Unmarshal(result.Response.Value, res)
}

func (q *Querier) client(rpcAddr string) (RPCClient, error) {
	addr := core.NormalizeRPCAddr(rpcAddr)
	q.mu.Lock()
	defer q.mu.Unlock()
	if c, ok := q.clients[addr]; ok {
		return c, nil
	}
	c, err := q.newClient(addr, q.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc client for %s: %w", addr, err)
	}
	q.clients[addr] = c
	return c, nil
}

func newRPCClient(addr string, timeout time.Duration) (RPCClient, error) {
	httpClient, err := libclient.DefaultHTTPClient(addr)
	if err != nil {
		return nil, err
	}

	httpClient.Timeout = timeout
	rpcClient, err := rpchttp.NewWithClient(addr, "/websocket", httpClient)
	if err != nil {
		return nil, err
	}

	return rpcClient, nil
}

func GetQuerierLogger(chainID string) *log.RelayLogger {
	return log.GetLogger().
		WithChain(chainID).
		WithModule("tendermint.querier")
}
