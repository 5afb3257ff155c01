package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
)

// HashSigner signs a 32-byte digest. Implementations may hold a local key or
// forward the digest to a remote wallet.
type HashSigner interface {
	Address() common.Address
	SignHash(hash common.Hash) (Signature, error)
}

// Signer handles private key operations and signing
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewSigner creates a new signer from a hex private key, with or without 0x.
func NewSigner(privateKeyHex string) (*Signer, error) {
	if privateKeyHex == "" {
		return nil, fmt.Errorf("private key is required")
	}
	privateKeyHex = strings.TrimPrefix(strings.TrimPrefix(privateKeyHex, "0x"), "0X")

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return NewSignerFromKey(privateKey), nil
}

// NewSignerFromKey wraps an existing key.
func NewSignerFromKey(privateKey *ecdsa.PrivateKey) *Signer {
	return &Signer{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

// Address returns the signer's address
func (s *Signer) Address() common.Address {
	return s.address
}

// SignHash signs a digest with the secp256k1 key.
func (s *Signer) SignHash(hash common.Hash) (Signature, error) {
	if s == nil || s.privateKey == nil {
		return Signature{}, hlerrors.NewSignatureError(nil, "key material unavailable")
	}
	sig, err := crypto.Sign(hash.Bytes(), s.privateKey)
	if err != nil {
		return Signature{}, hlerrors.NewSignatureError(err, "failed to sign hash")
	}
	return SignatureFromBytes(sig)
}
