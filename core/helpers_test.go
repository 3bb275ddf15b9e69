package core

import (
	"errors"
	"slices"
	"sync"
)

const testMnemonic = "test mnemonic"

// memConfig is an in-memory ConfigI with the same mutation semantics as the
// file store: fn works on a copy and nothing is kept when it fails
type memConfig struct {
	mu        sync.Mutex
	cfg       *RelayerConfig
	mutations int
	failWrite bool
}

var _ ConfigI = (*memConfig)(nil)

func newMemConfig(cfg *RelayerConfig) *memConfig {
	return &memConfig{cfg: cloneConfig(cfg)}
}

func (m *memConfig) Load() (*RelayerConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneConfig(m.cfg), nil
}

func (m *memConfig) Mutate(fn func(*RelayerConfig) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg := cloneConfig(m.cfg)
	if err := fn(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if m.failWrite {
		return ErrConfigWrite
	}
	m.cfg = cfg
	m.mutations++
	return nil
}

func (m *memConfig) Path() string {
	return "/tmp/relayer/config.yaml"
}

func (m *memConfig) mutationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutations
}

// path returns a copy of the stored path
func (m *memConfig) path(id string) PathConfig {
	cfg, _ := m.Load()
	pc, err := cfg.PathByID(id)
	if err != nil {
		panic(err)
	}
	return *pc
}

func cloneConfig(cfg *RelayerConfig) *RelayerConfig {
	out := &RelayerConfig{
		Chains:   slices.Clone(cfg.Chains),
		Mnemonic: cfg.Mnemonic,
	}
	for _, pc := range cfg.Paths {
		if pc.Options != nil {
			opts := *pc.Options
			pc.Options = &opts
		}
		if pc.Connections != nil {
			conns := *pc.Connections
			pc.Connections = &conns
		}
		if pc.RelayerData != nil {
			data := *pc.RelayerData
			pc.RelayerData = &data
		}
		out.Paths = append(out.Paths, pc)
	}
	return out
}

func testChain(chainID, gasPrice string) ChainConfig {
	return ChainConfig{
		ChainID:       chainID,
		Account:       "default",
		RPCAddr:       "http://" + chainID + ":26657",
		AddressPrefix: "cosmos",
		GasPrice:      gasPrice,
		GasLimit:      400000,
	}
}

func unlinkedPath(id, src, dst string) PathConfig {
	opts := DefaultConnectOptions()
	return PathConfig{
		Path: Path{
			ID:  id,
			Src: PathEnd{ChainID: src, PortID: TransferPort},
			Dst: PathEnd{ChainID: dst, PortID: TransferPort},
		},
		Options: &opts,
	}
}

func linkedPath(id, src, dst string) PathConfig {
	pc := unlinkedPath(id, src, dst)
	pc.Path.IsLinked = true
	pc.Path.Src.ChannelID = "channel-0"
	pc.Path.Dst.ChannelID = "channel-1"
	pc.Connections = &Connections{SrcConnection: "connection-0", DestConnection: "connection-1"}
	return pc
}

// testConfig has chains ibc0 and ibc1 paying in stake and a path p1 between them
func testConfig(paths ...PathConfig) *RelayerConfig {
	return &RelayerConfig{
		Chains: []ChainConfig{
			testChain("ibc0", "0.025stake"),
			testChain("ibc1", "0.025stake"),
		},
		Paths:    paths,
		Mnemonic: testMnemonic,
	}
}

type fakeSigner struct{}

func (fakeSigner) Address(prefix string) (string, error) {
	return prefix + "1relayer", nil
}

type fakeKeyring struct {
	mu        sync.Mutex
	generated int
	err       error
}

func (k *fakeKeyring) NewMnemonic() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.err != nil {
		return "", k.err
	}
	k.generated++
	return testMnemonic, nil
}

func (k *fakeKeyring) Signer(mnemonic string) (Signer, error) {
	if mnemonic != testMnemonic {
		return nil, errors.New("unknown mnemonic")
	}
	return fakeSigner{}, nil
}

type fakeHandle struct {
	chainID string
}

func (h fakeHandle) ChainID() string { return h.chainID }
func (h fakeHandle) Address() string { return "cosmos1relayer" }
