package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/yui-path-relayer/core"
)

func testChain(chainID string) core.ChainConfig {
	return core.ChainConfig{
		ChainID:       chainID,
		Account:       core.DefaultAccount,
		RPCAddr:       "http://" + chainID + ":26657",
		AddressPrefix: core.DefaultAddressPrefix,
		GasPrice:      core.DefaultGasPrice,
		GasLimit:      core.DefaultGasLimit,
	}
}

func testPath(id string) core.PathConfig {
	opts := core.DefaultConnectOptions()
	return core.PathConfig{
		Path: core.Path{
			ID:  id,
			Src: core.PathEnd{ChainID: "ibc0", PortID: core.TransferPort},
			Dst: core.PathEnd{ChainID: "ibc1", PortID: core.TransferPort},
		},
		Options: &opts,
	}
}

func newTestStore(t *testing.T, file string) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), DefaultConfigDir, file))
	require.NoError(t, err)
	return s
}

func TestNewCreatesEmptyDocument(t *testing.T) {
	home := t.TempDir()
	s, err := New(DefaultConfigPath(home))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "config", "config.yaml"), s.Path())

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	cfg, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, cfg.Chains)
	require.Empty(t, cfg.Paths)
	require.Empty(t, cfg.Mnemonic)
}

func TestStoreRoundTrip(t *testing.T) {
	for _, file := range []string{"config.yaml", "config.toml"} {
		t.Run(file, func(t *testing.T) {
			s := newTestStore(t, file)

			linked := testPath("p2")
			linked.Path.IsLinked = true
			linked.Path.Src.ChannelID = "channel-0"
			linked.Path.Dst.ChannelID = "channel-4"
			linked.Connections = &core.Connections{SrcConnection: "connection-0", DestConnection: "connection-2"}
			linked.RelayerData = &core.PacketHeights{PacketHeightA: 12, AckHeightB: 30}

			err := s.Mutate(func(c *core.RelayerConfig) error {
				c.Chains = []core.ChainConfig{testChain("ibc0"), testChain("ibc1")}
				c.Paths = []core.PathConfig{testPath("p1"), linked}
				c.Mnemonic = "abandon abandon"
				return nil
			})
			require.NoError(t, err)

			// a fresh store reads what the first one wrote
			reopened, err := New(s.Path())
			require.NoError(t, err)
			cfg, err := reopened.Load()
			require.NoError(t, err)

			require.Equal(t, []core.ChainConfig{testChain("ibc0"), testChain("ibc1")}, cfg.Chains)
			require.Equal(t, "abandon abandon", cfg.Mnemonic)
			require.Len(t, cfg.Paths, 2)
			require.Equal(t, testPath("p1"), cfg.Paths[0])
			require.Equal(t, linked, cfg.Paths[1])
		})
	}
}

func TestMutateFailureWritesNothing(t *testing.T) {
	s := newTestStore(t, "config.yaml")
	require.NoError(t, s.Mutate(func(c *core.RelayerConfig) error {
		c.Chains = []core.ChainConfig{testChain("ibc0")}
		return nil
	}))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = s.Mutate(func(c *core.RelayerConfig) error {
		c.Chains = nil
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	// a document breaking an invariant is rejected as well
	err = s.Mutate(func(c *core.RelayerConfig) error {
		c.Chains = append(c.Chains, testChain("ibc0"))
		return nil
	})
	require.ErrorIs(t, err, core.ErrInvalidConfig)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestLoadMalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml syntax", "config.yaml", "chains: [\n"},
		{"yaml unknown key", "config.yaml", "chains: []\nunknown: 1\n"},
		{"toml syntax", "config.toml", "mnemonic = \n"},
		{"toml unknown key", "config.toml", "unknown = 1\n"},
		{"invalid gas price", "config.yaml", "chains:\n- chainId: ibc9\n  rpcAddr: http://ibc9:26657\n  gasPrice: cheap\n"},
		{"linked path without channels", "config.yaml", "paths:\n- path:\n    id: p1\n    isLinked: true\n    src:\n      chainID: ibc0\n    dst:\n      chainID: ibc1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := New(path)
			require.ErrorIs(t, err, core.ErrConfigRead)
		})
	}
}

func TestInvalidDocumentOnDiskBlocksMutate(t *testing.T) {
	s := newTestStore(t, "config.yaml")
	require.NoError(t, s.Mutate(func(c *core.RelayerConfig) error {
		c.Chains = []core.ChainConfig{testChain("ibc0"), testChain("ibc1")}
		return nil
	}))

	// the document is edited by hand while the store is open
	broken := []byte("chains:\n- chainId: ibc9\n  rpcAddr: http://ibc9:26657\n  gasPrice: cheap\n")
	require.NoError(t, os.WriteFile(s.Path(), broken, 0o600))

	_, err := s.Load()
	require.ErrorIs(t, err, core.ErrConfigRead)
	err = s.Mutate(func(c *core.RelayerConfig) error { return nil })
	require.ErrorIs(t, err, core.ErrConfigRead)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, broken, after)
}

func TestNewFolderFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "home")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := New(filepath.Join(blocker, DefaultConfigDir, DefaultConfigFile))
	require.ErrorIs(t, err, core.ErrConfigFolder)
}

func TestConcurrentMutate(t *testing.T) {
	s := newTestStore(t, "config.yaml")
	require.NoError(t, s.Mutate(func(c *core.RelayerConfig) error {
		c.Chains = []core.ChainConfig{testChain("ibc0"), testChain("ibc1")}
		return nil
	}))

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.Mutate(func(c *core.RelayerConfig) error {
				c.Paths = append(c.Paths, testPath(fmt.Sprintf("p%d", i)))
				return nil
			})
		}()
	}
	wg.Wait()
	require.NoError(t, errors.Join(errs...))

	cfg, err := s.Load()
	require.NoError(t, err)
	require.Len(t, cfg.Paths, n)
	for i := range n {
		_, err := cfg.PathByID(fmt.Sprintf("p%d", i))
		require.NoError(t, err)
	}
}
