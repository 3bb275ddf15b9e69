package signer

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"

	"github.com/hyperledger-labs/yui-path-relayer/core"
)

const (
	// CoinType is the SLIP-44 coin type of the relayer account
	CoinType = 118

	mnemonicEntropySize = 256
)

var _ core.Keyring = Keyring{}

// Keyring derives secp256k1 signers from a bip39 mnemonic
type Keyring struct{}

func NewKeyring() Keyring {
	return Keyring{}
}

// NewMnemonic generates a 24-word mnemonic
func (Keyring) NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropySize)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

func (Keyring) Signer(mnemonic string) (core.Signer, error) {
	return FromMnemonic(mnemonic)
}

// Secp256k1Signer holds the key of the first account on HD path m/44'/118'/0'/0/0
type Secp256k1Signer struct {
	privKey cryptotypes.PrivKey
}

var _ core.Signer = (*Secp256k1Signer)(nil)

// HDPath returns the derivation path of the relayer account
func HDPath() string {
	return hd.CreateHDPath(CoinType, 0, 0).String()
}

func FromMnemonic(mnemonic string) (*Secp256k1Signer, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	derivedPriv, err := hd.Secp256k1.Derive()(mnemonic, "", HDPath())
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return &Secp256k1Signer{privKey: hd.Secp256k1.Generate()(derivedPriv)}, nil
}

func (s *Secp256k1Signer) PubKey() cryptotypes.PubKey {
	return s.privKey.PubKey()
}

// Address returns the bech32 account address with the given prefix
func (s *Secp256k1Signer) Address(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("address prefix must not be empty")
	}
	return sdk.Bech32ifyAddressBytes(prefix, s.PubKey().Address())
}
