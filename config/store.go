package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"github.com/BurntSushi/toml"
	"github.com/moby/sys/atomicwriter"
	"gopkg.in/yaml.v2"

	"github.com/hyperledger-labs/yui-path-relayer/core"
)

const (
	DefaultConfigDir  = "config"
	DefaultConfigFile = "config.yaml"

	configFileMode = 0o600
	configDirMode  = 0o755
)

var _ core.ConfigI = (*Store)(nil)

// Store persists the relayer document at a single file.
// All reads and writes are serialized by a mutex held for the whole
// read-modify-write cycle, and every write replaces the file atomically.
type Store struct {
	path  string
	codec codec
	mu    sync.Mutex
}

// New returns a Store backed by the file at path. The parent folder is
// created if needed, and an empty document is written when the file does
// not exist yet.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return nil, errorsmod.Wrapf(core.ErrConfigFolder, "%s: %v", filepath.Dir(path), err)
	}
	s := &Store{
		path:  path,
		codec: codecFor(path),
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(DefaultConfig()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, errorsmod.Wrapf(core.ErrConfigRead, "%s: %v", path, err)
	}
	if _, err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultConfigPath returns the location of the document under the home directory
func DefaultConfigPath(homePath string) string {
	return filepath.Join(homePath, DefaultConfigDir, DefaultConfigFile)
}

// DefaultConfig returns an empty document
func DefaultConfig() *core.RelayerConfig {
	return &core.RelayerConfig{}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the document currently on disk. A malformed or invalid
// document fails with ErrConfigRead.
func (s *Store) Load() (*core.RelayerConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Mutate reads the document on disk, applies fn and writes the result back.
// If fn fails, or the mutated document is invalid, nothing is written.
func (s *Store) Mutate(fn func(*core.RelayerConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.write(cfg)
}

func (s *Store) read() (*core.RelayerConfig, error) {
	bz, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errorsmod.Wrapf(core.ErrConfigRead, "%s: %v", s.path, err)
	}
	cfg := DefaultConfig()
	if err := s.codec.unmarshal(bz, cfg); err != nil {
		return nil, errorsmod.Wrapf(core.ErrConfigRead, "%s: %v", s.path, err)
	}
	// hand edits are held to the same invariants as writes
	if err := cfg.Validate(); err != nil {
		return nil, errorsmod.Wrapf(core.ErrConfigRead, "%s: %v", s.path, err)
	}
	return cfg, nil
}

func (s *Store) write(cfg *core.RelayerConfig) error {
	bz, err := s.codec.marshal(cfg)
	if err != nil {
		return errorsmod.Wrapf(core.ErrConfigWrite, "%s: %v", s.path, err)
	}
	if err := atomicwriter.WriteFile(s.path, bz, configFileMode); err != nil {
		return errorsmod.Wrapf(core.ErrConfigWrite, "%s: %v", s.path, err)
	}
	return nil
}

type codec interface {
	marshal(cfg *core.RelayerConfig) ([]byte, error)
	unmarshal(bz []byte, cfg *core.RelayerConfig) error
}

// codecFor selects the document format from the file extension.
// Anything other than .toml is treated as yaml.
func codecFor(path string) codec {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlCodec{}
	}
	return yamlCodec{}
}

type yamlCodec struct{}

func (yamlCodec) marshal(cfg *core.RelayerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (yamlCodec) unmarshal(bz []byte, cfg *core.RelayerConfig) error {
	return yaml.UnmarshalStrict(bz, cfg)
}

type tomlCodec struct{}

func (tomlCodec) marshal(cfg *core.RelayerConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) unmarshal(bz []byte, cfg *core.RelayerConfig) error {
	md, err := toml.Decode(string(bz), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errorsmod.Wrapf(core.ErrInvalidConfig, "unknown keys: %v", undecoded)
	}
	return nil
}
