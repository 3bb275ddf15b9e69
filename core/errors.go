package core

import (
	errorsmod "cosmossdk.io/errors"
)

// RootCodespace is the codespace for all errors defined by the relayer
const RootCodespace = "relayer"

// configuration errors abort the triggering operation
var (
	ErrConfigFolder  = errorsmod.Register(RootCodespace, 2, "failed to create config folder")
	ErrConfigRead    = errorsmod.Register(RootCodespace, 3, "failed to read config")
	ErrConfigWrite   = errorsmod.Register(RootCodespace, 4, "failed to write config")
	ErrInvalidConfig = errorsmod.Register(RootCodespace, 5, "invalid config")
)

// path errors
var (
	ErrPathsNotDefined   = errorsmod.Register(RootCodespace, 10, "no paths are defined")
	ErrPathNotFound      = errorsmod.Register(RootCodespace, 11, "path not found")
	ErrPathNotLinked     = errorsmod.Register(RootCodespace, 12, "path is not linked")
	ErrPathAlreadyLinked = errorsmod.Register(RootCodespace, 13, "path is already linked")
	ErrPathAlreadyExists = errorsmod.Register(RootCodespace, 14, "path already exists")
)

// chain errors
var (
	ErrChainNotFound           = errorsmod.Register(RootCodespace, 20, "chain not found")
	ErrChainEndpointMismatch   = errorsmod.Register(RootCodespace, 21, "rpc endpoint already exists with a different chain id")
	ErrInsufficientFunds       = errorsmod.Register(RootCodespace, 22, "insufficient balance")
	ErrLinkProviderUnavailable = errorsmod.Register(RootCodespace, 23, "no link provider is registered")
)

// link and relay errors
var (
	ErrConnectionFailed = errorsmod.Register(RootCodespace, 30, "failed to create connection")
	ErrChannelFailed    = errorsmod.Register(RootCodespace, 31, "failed to create channel")
	ErrRelay            = errorsmod.Register(RootCodespace, 32, "failed to relay packets")
)
