package core

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// IBCSetupGas is the gas needed to create clients, a connection and a
// channel between two chains
const IBCSetupGas = 2_256_000

// Requirement is the minimum balance an account needs before linking
type Requirement struct {
	ChainID string
	Denom   string
	Amount  sdkmath.Int
}

func (r Requirement) String() string {
	return fmt.Sprintf("%s%s (%s)", r.Amount, r.Denom, r.ChainID)
}

// Err returns the error reported when the requirement is not met
func (r Requirement) Err() error {
	return errorsmod.Wrapf(ErrInsufficientFunds, "need at least %s", r)
}

// BalanceGuard checks that the relayer account can pay for a link setup
type BalanceGuard struct {
	querier BalanceQuerier
}

func NewBalanceGuard(querier BalanceQuerier) *BalanceGuard {
	return &BalanceGuard{querier: querier}
}

// RequiredBalance computes ceil(gasPrice * IBCSetupGas) in the gas denom
func RequiredBalance(chain ChainConfig) (Requirement, error) {
	gp, err := chain.ParseGasPrice()
	if err != nil {
		return Requirement{}, err
	}
	return Requirement{
		ChainID: chain.ChainID,
		Denom:   gp.Denom,
		Amount:  gp.Amount.MulInt64(IBCSetupGas).Ceil().TruncateInt(),
	}, nil
}

// CheckSufficientBalance reports whether address holds at least the required
// amount of the gas denom on the chain. An account without any balance in the
// gas denom is insufficient.
func (g *BalanceGuard) CheckSufficientBalance(ctx context.Context, chain ChainConfig, address string) (bool, Requirement, error) {
	req, err := RequiredBalance(chain)
	if err != nil {
		return false, Requirement{}, err
	}
	coins, err := g.querier.QueryBalance(ctx, chain, address)
	if err != nil {
		return false, req, errorsmod.Wrapf(err, "failed to query balance on %s", chain.ChainID)
	}
	found, coin := coins.Find(req.Denom)
	if !found {
		return false, req, nil
	}
	return coin.Amount.GTE(req.Amount), req, nil
}
