package config

import (
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/hyperledger-labs/yui-path-relayer/core"
)

// ModuleI is a plugin supplying chain capabilities to the relayer
type ModuleI interface {
	// Name returns the name of the module
	Name() string

	// BalanceQuerier returns the chain querier of the module, or nil
	BalanceQuerier(timeout time.Duration) core.BalanceQuerier

	// LinkProvider returns the handshake and relay provider of the module, or nil
	LinkProvider() core.LinkProvider
}

// ChainClientFromModules composes a chain client from the first querier and
// the first link provider supplied by modules
func ChainClientFromModules(modules []ModuleI, timeout time.Duration) (core.ChainClient, error) {
	var (
		querier  core.BalanceQuerier
		provider core.LinkProvider
	)
	for _, m := range modules {
		if querier == nil {
			querier = m.BalanceQuerier(timeout)
		}
		if provider == nil {
			provider = m.LinkProvider()
		}
	}
	if querier == nil {
		return nil, errorsmod.Wrap(core.ErrInvalidConfig, "no module provides a chain querier")
	}
	return core.NewChainClient(querier, provider), nil
}
