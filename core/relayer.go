package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/sync/errgroup"

	"github.com/hyperledger-labs/yui-path-relayer/internal/telemetry"
	"github.com/hyperledger-labs/yui-path-relayer/log"
)

const (
	DefaultPollInterval     = 5 * time.Second
	DefaultMaxAge           = 86400 * time.Second
	DefaultRequestTimeout   = 30 * time.Second
	DefaultLinkConcurrency  = 4
	DefaultTickAttempts     = 3
	DefaultTickRetryDelay   = time.Second
	DefaultFailureThreshold = 5
)

// Options tunes the relayer
type Options struct {
	// PollInterval is the period between two relay ticks of a path
	PollInterval time.Duration
	// MaxAge is the age after which a light client is refreshed
	MaxAge time.Duration
	// RequestTimeout bounds a single relay tick
	RequestTimeout time.Duration
	// LinkConcurrency is the number of paths linked in parallel
	LinkConcurrency int
	// TickAttempts is the number of times a failed tick is tried before it counts as failed
	TickAttempts uint
	TickRetryDelay time.Duration
	// FailureThreshold is the number of consecutive failed ticks after which the loop escalates
	FailureThreshold int
}

func DefaultOptions() Options {
	return Options{
		PollInterval:     DefaultPollInterval,
		MaxAge:           DefaultMaxAge,
		RequestTimeout:   DefaultRequestTimeout,
		LinkConcurrency:  DefaultLinkConcurrency,
		TickAttempts:     DefaultTickAttempts,
		TickRetryDelay:   DefaultTickRetryDelay,
		FailureThreshold: DefaultFailureThreshold,
	}
}

// withDefaults fills every unset option with its default
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PollInterval <= 0 {
		o.PollInterval = def.PollInterval
	}
	if o.MaxAge <= 0 {
		o.MaxAge = def.MaxAge
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = def.RequestTimeout
	}
	if o.LinkConcurrency <= 0 {
		o.LinkConcurrency = def.LinkConcurrency
	}
	if o.TickAttempts == 0 {
		o.TickAttempts = def.TickAttempts
	}
	if o.TickRetryDelay < 0 {
		o.TickRetryDelay = 0
	}
	if o.FailureThreshold <= 0 {
		o.FailureThreshold = def.FailureThreshold
	}
	return o
}

// LinkError is the reason a path failed to link
type LinkError struct {
	PathName string `json:"pathName" yaml:"pathName"`
	Error    string `json:"error" yaml:"error"`
}

type LinkResponse struct {
	LinkedPaths        []string    `json:"linkedPaths" yaml:"linkedPaths"`
	AlreadyLinkedPaths []string    `json:"alreadyLinkedPaths" yaml:"alreadyLinkedPaths"`
	FailedToLinkPaths  []LinkError `json:"failedToLinkPaths" yaml:"failedToLinkPaths"`
}

const (
	DefaultAccount       = "default"
	DefaultAddressPrefix = "cosmos"
	DefaultGasPrice      = "0.025stake"
	DefaultGasLimit      = 400000
)

// ChainSetupOptions holds the chain parameters given when a chain is set up.
// Empty fields keep the stored value, or the default for a new chain.
type ChainSetupOptions struct {
	Account       string
	AddressPrefix string
	GasPrice      string
	GasLimit      int64
}

type EnsureChainSetupResponse struct {
	ID string `json:"id" yaml:"id"`
}

// CreatePathRequest describes a path to create. An empty ID is replaced by
// a unique one derived from the chain ids.
type CreatePathRequest struct {
	ID      string
	Src     PathEnd
	Dst     PathEnd
	Options *ConnectOptions
}

type InfoResponse struct {
	ConfigPath string `json:"configPath" yaml:"configPath"`
}

// Relayer owns the path lifecycle: it links paths and runs a relay loop for
// every started path
type Relayer struct {
	config  ConfigI
	client  ChainClient
	keyring Keyring
	linker  *PathLinker
	opts    Options

	// mu guards the loop generation below and is held for the whole of Stop
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	running map[string]*RelayService
	wg      sync.WaitGroup
}

func NewRelayer(config ConfigI, client ChainClient, keyring Keyring, opts Options) *Relayer {
	r := &Relayer{
		config:  config,
		client:  client,
		keyring: keyring,
		linker:  NewPathLinker(config, client, keyring),
		opts:    opts.withDefaults(),
	}
	r.reset()
	return r
}

func (r *Relayer) reset() {
	r.ctx, r.cancel = context.WithCancel(context.Background())
	r.running = make(map[string]*RelayService)
}

func (r *Relayer) logger() *log.RelayLogger {
	return log.GetLogger().WithModule("core.relayer")
}

// Link links every given path that is not linked yet. Per-path failures are
// reported in the response and never abort the other paths.
func (r *Relayer) Link(ctx context.Context, pathIDs []string) (*LinkResponse, error) {
	cfg, err := r.config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.HasPaths() {
		return nil, ErrPathsNotDefined
	}

	type result struct {
		alreadyLinked bool
		err           error
	}
	ids := uniqueIDs(pathIDs)
	results := make([]result, len(ids))

	eg := new(errgroup.Group)
	eg.SetLimit(r.opts.LinkConcurrency)
	for i, id := range ids {
		pc, err := cfg.PathByID(id)
		if err != nil {
			results[i] = result{err: err}
			continue
		}
		if pc.Linked() {
			results[i] = result{alreadyLinked: true}
			continue
		}
		eg.Go(func() error {
			err := r.linker.CreateLink(ctx, id)
			if errorsmod.IsOf(err, ErrPathAlreadyLinked) {
				results[i] = result{alreadyLinked: true}
				return nil
			}
			results[i] = result{err: err}
			return nil
		})
	}
	_ = eg.Wait()

	res := &LinkResponse{
		LinkedPaths:        []string{},
		AlreadyLinkedPaths: []string{},
		FailedToLinkPaths:  []LinkError{},
	}
	for i, id := range ids {
		switch {
		case results[i].alreadyLinked:
			res.AlreadyLinkedPaths = append(res.AlreadyLinkedPaths, id)
			telemetry.AddLinkResult(ctx, id, telemetry.StatusAlreadyLinked)
		case results[i].err != nil:
			res.FailedToLinkPaths = append(res.FailedToLinkPaths, LinkError{PathName: id, Error: results[i].err.Error()})
			telemetry.AddLinkResult(ctx, id, telemetry.StatusFailure)
			r.logger().WarnErr("failed to link path", results[i].err, "path_id", id)
		default:
			res.LinkedPaths = append(res.LinkedPaths, id)
			telemetry.AddLinkResult(ctx, id, telemetry.StatusSuccess)
		}
	}
	return res, nil
}

// Start schedules a relay loop for every given path. All ids are validated
// and every link is reopened before anything is scheduled, so a failure
// leaves no loop running. Paths that already run are skipped.
func (r *Relayer) Start(ctx context.Context, pathIDs []string) error {
	cfg, err := r.config.Load()
	if err != nil {
		return err
	}
	if !cfg.HasPaths() {
		return ErrPathsNotDefined
	}

	ids := uniqueIDs(pathIDs)
	var paths []PathConfig
	for _, id := range ids {
		pc, err := cfg.PathByID(id)
		if err != nil {
			return err
		}
		if !pc.Linked() {
			return errorsmod.Wrapf(ErrPathNotLinked, "path %s", id)
		}
		if r.isRunning(id) {
			continue
		}
		paths = append(paths, *pc)
	}
	if len(paths) == 0 {
		return nil
	}

	signer, err := r.linker.signer(cfg)
	if err != nil {
		return err
	}
	links := make([]Link, len(paths))
	for i, pc := range paths {
		if links[i], err = r.openLink(ctx, cfg, pc, signer); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, pc := range paths {
		id := pc.Path.ID
		if _, ok := r.running[id]; ok {
			continue
		}
		srv := NewRelayService(pc.Path, links[i], r.config, r.opts)
		r.running[id] = srv
		r.wg.Add(1)
		go func(ctx context.Context) {
			defer r.wg.Done()
			_ = srv.Start(ctx)
		}(r.ctx)
	}
	return nil
}

func (r *Relayer) openLink(ctx context.Context, cfg *RelayerConfig, pc PathConfig, signer Signer) (Link, error) {
	chains, err := cfg.ChainsByIDs(pc.Path.Src.ChainID, pc.Path.Dst.ChainID)
	if err != nil {
		return nil, err
	}
	handleA, err := r.client.ConnectWithSigner(ctx, chains[0], signer)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrConnectionFailed, "failed to connect to %s: %v", chains[0].ChainID, err)
	}
	handleB, err := r.client.ConnectWithSigner(ctx, chains[1], signer)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrConnectionFailed, "failed to connect to %s: %v", chains[1].ChainID, err)
	}
	link, err := r.client.CreateLinkWithExistingConnections(ctx, handleA, handleB, pc.Connections.SrcConnection, pc.Connections.DestConnection)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrConnectionFailed, "path %s: %v", pc.Path.ID, err)
	}
	return link, nil
}

func (r *Relayer) isRunning(pathID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.running[pathID]
	return ok
}

// Running returns the ids of the paths whose loop is scheduled
func (r *Relayer) Running() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.running))
	for id := range r.running {
		ids = append(ids, id)
	}
	return ids
}

// Stop cancels every relay loop and waits for them to return.
// The relayer can be started again afterwards. A Start racing with Stop
// blocks until Stop returns and then schedules its loops afresh.
func (r *Relayer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
	r.reset()
}

// EnsureChainSetup registers the chain served at rpcAddr, or merges the given
// options into its existing entry, and returns its chain id. The address is
// compared and stored in its NormalizeRPCAddr form.
// A mnemonic is generated when none is stored yet.
func (r *Relayer) EnsureChainSetup(ctx context.Context, rpcAddr string, opts ChainSetupOptions) (*EnsureChainSetupResponse, error) {
	rpcAddr = NormalizeRPCAddr(rpcAddr)
	chainID, err := r.client.QueryChainID(ctx, rpcAddr)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrConnectionFailed, "failed to query chain id from %s: %v", rpcAddr, err)
	}

	if err := r.config.Mutate(func(c *RelayerConfig) error {
		if c.Mnemonic == "" {
			mnemonic, err := r.keyring.NewMnemonic()
			if err != nil {
				return err
			}
			c.Mnemonic = mnemonic
		}

		chain, err := c.ChainByID(chainID)
		if err != nil {
			newChain := ChainConfig{
				ChainID:       chainID,
				Account:       DefaultAccount,
				RPCAddr:       rpcAddr,
				AddressPrefix: DefaultAddressPrefix,
				GasPrice:      DefaultGasPrice,
				GasLimit:      DefaultGasLimit,
			}
			mergeChainSetupOptions(&newChain, opts)
			c.Chains = append(c.Chains, newChain)
			return nil
		}
		if NormalizeRPCAddr(chain.RPCAddr) != rpcAddr {
			return errorsmod.Wrapf(ErrChainEndpointMismatch, "chain %s is served at %s, not %s", chainID, chain.RPCAddr, rpcAddr)
		}
		chain.RPCAddr = rpcAddr
		mergeChainSetupOptions(chain, opts)
		return nil
	}); err != nil {
		return nil, err
	}

	r.logger().Info("chain set up", "chain_id", chainID, "rpc_addr", rpcAddr)
	return &EnsureChainSetupResponse{ID: chainID}, nil
}

func mergeChainSetupOptions(chain *ChainConfig, opts ChainSetupOptions) {
	if opts.Account != "" {
		chain.Account = opts.Account
	}
	if opts.AddressPrefix != "" {
		chain.AddressPrefix = opts.AddressPrefix
	}
	if opts.GasPrice != "" {
		chain.GasPrice = opts.GasPrice
	}
	if opts.GasLimit != 0 {
		chain.GasLimit = opts.GasLimit
	}
}

// CreatePath adds an unlinked path between two configured chains
func (r *Relayer) CreatePath(ctx context.Context, req CreatePathRequest) (*PathConfig, error) {
	opts := DefaultConnectOptions()
	if req.Options != nil {
		opts = *req.Options
	}
	src, dst := req.Src, req.Dst
	if src.PortID == "" {
		src.PortID = opts.SourcePort
	}
	if dst.PortID == "" {
		dst.PortID = opts.TargetPort
	}
	src.ChannelID, dst.ChannelID = "", ""

	var created PathConfig
	if err := r.config.Mutate(func(c *RelayerConfig) error {
		if _, err := c.ChainsByIDs(src.ChainID, dst.ChainID); err != nil {
			return err
		}
		id := req.ID
		if id == "" {
			id = uniquePathID(c, src.ChainID, dst.ChainID)
		} else if _, err := c.PathByID(id); err == nil {
			return errorsmod.Wrapf(ErrPathAlreadyExists, "path %s", id)
		}
		created = PathConfig{
			Path: Path{
				ID:  id,
				Src: src,
				Dst: dst,
			},
			Options: &opts,
		}
		c.Paths = append(c.Paths, created)
		return nil
	}); err != nil {
		return nil, err
	}

	GetPathLogger(created.Path).WithModule("core.relayer").InfoContext(ctx, "path created")
	return &created, nil
}

// uniquePathID returns "<src>-<dst>", suffixed with -2, -3, ... when taken
func uniquePathID(c *RelayerConfig, srcChainID, dstChainID string) string {
	base := fmt.Sprintf("%s-%s", srcChainID, dstChainID)
	id := base
	for n := 2; ; n++ {
		if _, err := c.PathByID(id); err != nil {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func (r *Relayer) GetPath(ctx context.Context, pathID string) (*PathConfig, error) {
	cfg, err := r.config.Load()
	if err != nil {
		return nil, err
	}
	return cfg.PathByID(pathID)
}

func (r *Relayer) ListPaths(ctx context.Context) ([]PathConfig, error) {
	cfg, err := r.config.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Paths, nil
}

// AccountBalance is the balance of the relayer account on one chain
type AccountBalance struct {
	ChainID string    `json:"chainId" yaml:"chainId"`
	Address string    `json:"address" yaml:"address"`
	Coins   sdk.Coins `json:"coins" yaml:"coins"`
}

// GetAccountBalance returns the non-zero balances of the relayer account on
// each given chain, in the given order. No ids means every configured chain.
func (r *Relayer) GetAccountBalance(ctx context.Context, chainIDs ...string) ([]AccountBalance, error) {
	cfg, err := r.config.Load()
	if err != nil {
		return nil, err
	}
	if len(chainIDs) == 0 {
		for _, chain := range cfg.Chains {
			chainIDs = append(chainIDs, chain.ChainID)
		}
	}
	chains, err := cfg.ChainsByIDs(uniqueIDs(chainIDs)...)
	if err != nil {
		return nil, err
	}
	if len(chains) == 0 {
		return []AccountBalance{}, nil
	}
	signer, err := r.linker.signer(cfg)
	if err != nil {
		return nil, err
	}

	balances := make([]AccountBalance, 0, len(chains))
	for _, chain := range chains {
		address, err := signer.Address(chain.AddressPrefix)
		if err != nil {
			return nil, err
		}
		coins, err := r.client.QueryBalance(ctx, chain, address)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "chain %s", chain.ChainID)
		}

		nonZero := sdk.Coins{}
		for _, coin := range coins {
			if !coin.IsZero() {
				nonZero = append(nonZero, coin)
			}
		}
		balances = append(balances, AccountBalance{ChainID: chain.ChainID, Address: address, Coins: nonZero})
	}
	return balances, nil
}

func (r *Relayer) Info() InfoResponse {
	return InfoResponse{ConfigPath: r.config.Path()}
}

// uniqueIDs drops repeated ids keeping the first occurrence
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
