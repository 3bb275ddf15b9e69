package module

import (
	"time"

	"github.com/hyperledger-labs/yui-path-relayer/chains/tendermint"
	"github.com/hyperledger-labs/yui-path-relayer/config"
	"github.com/hyperledger-labs/yui-path-relayer/core"
)

type Module struct{}

var _ config.ModuleI = (*Module)(nil)

// Name returns the name of the module
func (Module) Name() string {
	return "tendermint"
}

// BalanceQuerier returns a querier talking to CometBFT RPC endpoints
func (Module) BalanceQuerier(timeout time.Duration) core.BalanceQuerier {
	return tendermint.NewQuerier(timeout)
}

// LinkProvider returns nil since the handshake and packet relay are not
// provided by this module
func (Module) LinkProvider() core.LinkProvider {
	return nil
}
