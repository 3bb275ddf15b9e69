package core

import (
	"net"
	"net/url"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ConfigI is the durable store of the relayer configuration document.
//
// Every mutation must read the document currently persisted, apply fn and
// persist the result before returning. Concurrent calls are serialized at
// whole-document granularity.
type ConfigI interface {
	// Load returns the document currently persisted
	Load() (*RelayerConfig, error)

	// Mutate applies fn to the persisted document and writes the result back.
	// Nothing is written if fn returns an error.
	Mutate(fn func(*RelayerConfig) error) error

	// Path returns the location of the document
	Path() string
}

// RelayerConfig is the persisted configuration document
type RelayerConfig struct {
	Chains   []ChainConfig `yaml:"chains,omitempty" json:"chains,omitempty" toml:"chains,omitempty"`
	Paths    []PathConfig  `yaml:"paths,omitempty" json:"paths,omitempty" toml:"paths,omitempty"`
	Mnemonic string        `yaml:"mnemonic,omitempty" json:"-" toml:"mnemonic,omitempty"`
}

// ChainConfig defines the configuration of a chain the relayer talks to
type ChainConfig struct {
	ChainID       string `yaml:"chainId" json:"chainId" toml:"chainId"`
	Account       string `yaml:"account" json:"account" toml:"account"`
	RPCAddr       string `yaml:"rpcAddr" json:"rpcAddr" toml:"rpcAddr"`
	AddressPrefix string `yaml:"addressPrefix" json:"addressPrefix" toml:"addressPrefix"`
	GasPrice      string `yaml:"gasPrice" json:"gasPrice" toml:"gasPrice"`
	GasLimit      int64  `yaml:"gasLimit" json:"gasLimit" toml:"gasLimit"`
}

// NormalizeRPCAddr returns the canonical spelling of an RPC endpoint so that
// two spellings of the same endpoint compare equal. Surrounding spaces and
// trailing slashes are dropped, the scheme defaults to http and a missing port
// is set to the default port of the scheme.
func NormalizeRPCAddr(addr string) string {
	addr = strings.TrimRight(strings.TrimSpace(addr), "/")
	if addr == "" {
		return ""
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return addr
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Port() == "" {
		switch u.Scheme {
		case "http", "ws":
			u.Host = net.JoinHostPort(u.Hostname(), "80")
		case "https", "wss":
			u.Host = net.JoinHostPort(u.Hostname(), "443")
		}
	}
	return strings.TrimRight(u.String(), "/")
}

// ParseGasPrice parses the gas price of the chain, e.g. "0.025uatom"
func (c ChainConfig) ParseGasPrice() (sdk.DecCoin, error) {
	gp, err := sdk.ParseDecCoin(c.GasPrice)
	if err != nil {
		return sdk.DecCoin{}, errorsmod.Wrapf(ErrInvalidConfig, "chain %s: invalid gas price %q: %v", c.ChainID, c.GasPrice, err)
	}
	return gp, nil
}

// Validate checks that the chain config is usable
func (c ChainConfig) Validate() error {
	if c.ChainID == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "chain id must not be empty")
	}
	if c.RPCAddr == "" {
		return errorsmod.Wrapf(ErrInvalidConfig, "chain %s: rpc address must not be empty", c.ChainID)
	}
	if _, err := c.ParseGasPrice(); err != nil {
		return err
	}
	if c.GasLimit < 0 {
		return errorsmod.Wrapf(ErrInvalidConfig, "chain %s: gas limit must not be negative", c.ChainID)
	}
	return nil
}

// ChainByID returns the chain config with the given id.
// The returned pointer aliases the document, so writes through it are
// persisted when made inside Mutate.
func (c *RelayerConfig) ChainByID(chainID string) (*ChainConfig, error) {
	for i := range c.Chains {
		if c.Chains[i].ChainID == chainID {
			return &c.Chains[i], nil
		}
	}
	return nil, errorsmod.Wrapf(ErrChainNotFound, "chain with ID %s is not configured", chainID)
}

// ChainsByIDs returns the chain configs with the given ids in order
func (c *RelayerConfig) ChainsByIDs(chainIDs ...string) ([]ChainConfig, error) {
	out := make([]ChainConfig, 0, len(chainIDs))
	for _, id := range chainIDs {
		chain, err := c.ChainByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *chain)
	}
	return out, nil
}

// PathByID returns the path config with the given id.
// The returned pointer aliases the document.
func (c *RelayerConfig) PathByID(pathID string) (*PathConfig, error) {
	for i := range c.Paths {
		if c.Paths[i].Path.ID == pathID {
			return &c.Paths[i], nil
		}
	}
	return nil, errorsmod.Wrapf(ErrPathNotFound, "path with name %s does not exist", pathID)
}

// HasPaths reports whether any path is defined
func (c *RelayerConfig) HasPaths() bool {
	return len(c.Paths) > 0
}

// Validate checks every chain and path of the document
func (c *RelayerConfig) Validate() error {
	seenChains := make(map[string]struct{}, len(c.Chains))
	for _, chain := range c.Chains {
		if err := chain.Validate(); err != nil {
			return err
		}
		if _, ok := seenChains[chain.ChainID]; ok {
			return errorsmod.Wrapf(ErrInvalidConfig, "chain %s is defined more than once", chain.ChainID)
		}
		seenChains[chain.ChainID] = struct{}{}
	}
	seenPaths := make(map[string]struct{}, len(c.Paths))
	for _, path := range c.Paths {
		if err := path.Validate(); err != nil {
			return err
		}
		if _, ok := seenPaths[path.Path.ID]; ok {
			return errorsmod.Wrapf(ErrInvalidConfig, "path %s is defined more than once", path.Path.ID)
		}
		seenPaths[path.Path.ID] = struct{}{}
	}
	return nil
}
