package core

// Keyring derives the relayer account from the mnemonic stored in the
// config document. Key material never leaves the implementation.
type Keyring interface {
	// NewMnemonic generates a fresh mnemonic
	NewMnemonic() (string, error)

	// Signer derives the signer of the relayer account from mnemonic
	Signer(mnemonic string) (Signer, error)
}
