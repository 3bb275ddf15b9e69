package core

import (
	"context"
	"slices"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"go.opentelemetry.io/otel/codes"

	"github.com/hyperledger-labs/yui-path-relayer/log"
)

// PathLinker takes an unlinked path through the connection and channel
// handshakes and records the result.
//
// A path moves from Unlinked to Linked only through a single config mutation
// made after both handshakes succeeded. Any failure before that leaves the
// persisted path untouched.
type PathLinker struct {
	config  ConfigI
	client  ChainClient
	keyring Keyring
	guard   *BalanceGuard
	locks   *chainLocks
}

func NewPathLinker(config ConfigI, client ChainClient, keyring Keyring) *PathLinker {
	return &PathLinker{
		config:  config,
		client:  client,
		keyring: keyring,
		guard:   NewBalanceGuard(client),
		locks:   newChainLocks(),
	}
}

// CreateLink links the path with the given id
func (l *PathLinker) CreateLink(ctx context.Context, pathID string) error {
	cfg, err := l.config.Load()
	if err != nil {
		return err
	}
	pc, err := cfg.PathByID(pathID)
	if err != nil {
		return err
	}
	path := pc.Path
	if pc.Linked() {
		return errorsmod.Wrapf(ErrPathAlreadyLinked, "path %s", pathID)
	}

	ctx, span := tracer.Start(ctx, "PathLinker.CreateLink", WithPathAttributes(path), withPackage(l.client))
	defer span.End()
	logger := GetPathLogger(path).WithModule("core.link")

	chains, err := cfg.ChainsByIDs(path.Src.ChainID, path.Dst.ChainID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	srcChain, dstChain := chains[0], chains[1]

	opts := pc.ConnectOptionsOrDefault()
	order, err := opts.ChannelOrder()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	signer, err := l.signer(cfg)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	// two handshakes on the same chain would race the same signer account
	unlock := l.locks.lock(srcChain.ChainID, dstChain.ChainID)
	defer unlock()

	for _, chain := range chains {
		if err := l.checkBalance(ctx, chain, signer); err != nil {
			logger.WarnErr("balance check failed", err, "chain_id", chain.ChainID)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	handleA, err := l.client.ConnectWithSigner(ctx, srcChain, signer)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return errorsmod.Wrapf(ErrConnectionFailed, "failed to connect to %s: %v", srcChain.ChainID, err)
	}
	handleB, err := l.client.ConnectWithSigner(ctx, dstChain, signer)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return errorsmod.Wrapf(ErrConnectionFailed, "failed to connect to %s: %v", dstChain.ChainID, err)
	}

	link, err := l.client.CreateLinkWithNewConnections(ctx, handleA, handleB)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return errorsmod.Wrap(ErrConnectionFailed, err.Error())
	}
	conns := link.Connections()
	logger.InfoContext(ctx, "connections created", "src_connection", conns.SrcConnection, "dst_connection", conns.DestConnection)

	channels, err := link.CreateChannel(ctx, SideA, opts.SourcePort, opts.TargetPort, order, opts.TargetVersion)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return errorsmod.Wrap(ErrChannelFailed, err.Error())
	}

	if err := l.config.Mutate(func(c *RelayerConfig) error {
		pc, err := c.PathByID(pathID)
		if err != nil {
			return err
		}
		if pc.Linked() {
			return errorsmod.Wrapf(ErrPathAlreadyLinked, "path %s", pathID)
		}
		pc.Path.Src.ChannelID = channels.SrcChannelID
		pc.Path.Dst.ChannelID = channels.DestChannelID
		pc.Connections = &conns
		pc.Path.IsLinked = true
		pc.RelayerData = nil
		return nil
	}); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	logger.InfoContext(ctx, "path linked",
		"src_channel", channels.SrcChannelID,
		"dst_channel", channels.DestChannelID,
	)
	return nil
}

func (l *PathLinker) signer(cfg *RelayerConfig) (Signer, error) {
	if cfg.Mnemonic == "" {
		return nil, errorsmod.Wrap(ErrInvalidConfig, "no mnemonic is stored, set up a chain first")
	}
	return l.keyring.Signer(cfg.Mnemonic)
}

func (l *PathLinker) checkBalance(ctx context.Context, chain ChainConfig, signer Signer) error {
	address, err := signer.Address(chain.AddressPrefix)
	if err != nil {
		return err
	}
	ok, req, err := l.guard.CheckSufficientBalance(ctx, chain, address)
	if err != nil {
		return err
	}
	if !ok {
		return req.Err()
	}
	return nil
}

// GetPathLogger returns a logger carrying the path and both chain ids
func GetPathLogger(path Path) *log.RelayLogger {
	return log.GetLogger().
		WithPath(path.ID).
		WithChainPair(path.Src.ChainID, path.Dst.ChainID)
}

type chainLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newChainLocks() *chainLocks {
	return &chainLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the locks of the given chains in sorted order and returns
// a function releasing them
func (cl *chainLocks) lock(chainIDs ...string) func() {
	ids := slices.Clone(chainIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	held := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		m := cl.get(id)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (cl *chainLocks) get(chainID string) *sync.Mutex {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	m, ok := cl.locks[chainID]
	if !ok {
		m = &sync.Mutex{}
		cl.locks[chainID] = m
	}
	return m
}
